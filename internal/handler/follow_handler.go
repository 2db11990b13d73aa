package handlers

import (
	"encoding/json"
	"net/http"
)

func (h *Handlers) GetFollows(w http.ResponseWriter, r *http.Request) {
	if followedUUID := r.URL.Query().Get("user_uuid"); followedUUID != "" {
		followers, err := h.FollowRepo.GetFollowers(r.Context(), followedUUID)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteSuccess(w, followers, http.StatusOK)
		return
	}

	if followerUUID := r.URL.Query().Get("user_uuid_follower"); followerUUID != "" {
		following, err := h.FollowRepo.GetFollowing(r.Context(), followerUUID)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteSuccess(w, following, http.StatusOK)
		return
	}

	WriteError(w, "Missing user_uuid or user_uuid_follower query parameter", http.StatusBadRequest)
}

func (h *Handlers) CreateFollow(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserUUID         string `json:"user_uuid" validate:"required,uuid4"`
		UserUUIDFollower string `json:"user_uuid_follower" validate:"required,uuid4"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.UserUUID == req.UserUUIDFollower {
		WriteError(w, "A user cannot follow themselves", http.StatusBadRequest)
		return
	}

	if err := h.FollowRepo.Create(r.Context(), req.UserUUID, req.UserUUIDFollower); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, req, http.StatusCreated)
}

func (h *Handlers) DeleteFollow(w http.ResponseWriter, r *http.Request) {
	followedUUID := r.URL.Query().Get("user_uuid")
	followerUUID := r.URL.Query().Get("user_uuid_follower")

	if followedUUID == "" || followerUUID == "" {
		WriteError(w, "Missing user_uuid or user_uuid_follower query parameter", http.StatusBadRequest)
		return
	}

	deleted, err := h.FollowRepo.Delete(r.Context(), followedUUID, followerUUID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	if !deleted {
		WriteError(w, "Follow not found", http.StatusNotFound)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Follow deleted"}, http.StatusOK)
}
