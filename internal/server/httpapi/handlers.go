package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/vidvault/internal/server/models"
	"github.com/dmitrijs2005/vidvault/internal/server/services"
)

type successResponse struct {
	Success bool   `json:"success"`
	Key     string `json:"key,omitempty"`
	URL     string `json:"url,omitempty"`
}

type userResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type renameRequest struct {
	NewName string `json:"newName"`
}

type createUserRequest struct {
	Name string `json:"name"`
}

type usageResponse struct {
	Used  int64 `json:"used"`
	Limit int64 `json:"limit"`
}

func (s *Server) handleListVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := s.videos.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing videos", "error", err)
		writeServiceError(w, err)
		return
	}
	if videos == nil {
		videos = []*models.Video{}
	}
	writeJSON(w, http.StatusOK, videos)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes+1<<20)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	res, err := s.videos.Upload(r.Context(), services.UploadInput{
		FileName:     header.Filename,
		Size:         header.Size,
		ContentType:  header.Header.Get("Content-Type"),
		Body:         file,
		UploaderID:   r.FormValue("uploaderId"),
		UploaderName: r.FormValue("uploaderName"),
	})
	if err != nil {
		s.logger.Error(r.Context(), "uploading video", "filename", header.Filename, "error", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true, Key: res.Key, URL: res.URL})
}

func (s *Server) handleDeleteVideo(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	if err := s.videos.Delete(r.Context(), key); err != nil {
		s.logger.Error(r.Context(), "deleting video", "key", key, "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handleRenameVideo(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	var req renameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	newKey, err := s.videos.Rename(r.Context(), key, req.NewName)
	if err != nil {
		s.logger.Error(r.Context(), "renaming video", "key", key, "error", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true, Key: newKey})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "listing users", "error", err)
		writeServiceError(w, err)
		return
	}
	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, userResponse{ID: u.ID, Name: u.Name})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.users.Create(r.Context(), req.Name)
	if err != nil {
		s.logger.Error(r.Context(), "creating user", "error", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Name: user.Name})
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.users.Delete(r.Context(), id); err != nil {
		s.logger.Error(r.Context(), "deleting user", "id", id, "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handleStorageUsage(w http.ResponseWriter, r *http.Request) {
	used, limit, err := s.quota.CurrentUsage(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "reading storage usage", "error", err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, usageResponse{Used: used, Limit: limit})
}

func (s *Server) handleStorageHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.quota.History(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "reading storage history", "error", err)
		writeServiceError(w, err)
		return
	}
	if history == nil {
		history = []*models.MonthUsage{}
	}
	writeJSON(w, http.StatusOK, history)
}
