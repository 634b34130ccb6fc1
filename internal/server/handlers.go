package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/articurated/ordermanagement/internal/repository"
)

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ExternalID       string `json:"external_id"`
		CustomerEmail    string `json:"customer_email"`
		TotalAmountCents int64  `json:"total_amount_cents"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ExternalID == "" {
		req.ExternalID = uuid.NewString()
	}
	if req.CustomerEmail == "" {
		respondError(w, http.StatusBadRequest, "customer_email is required")
		return
	}
	if req.TotalAmountCents < 0 {
		respondError(w, http.StatusBadRequest, "total_amount_cents must not be negative")
		return
	}

	order, err := s.storage.CreateOrder(r.Context(), req.ExternalID, req.CustomerEmail, req.TotalAmountCents)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := s.storage.GetOrder(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleGetOrderByExternalID(w http.ResponseWriter, r *http.Request) {
	externalID := mux.Vars(r)["external_id"]
	if externalID == "" {
		respondError(w, http.StatusBadRequest, "Invalid external id")
		return
	}

	order, err := s.storage.GetOrderByExternalID(r.Context(), externalID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleChangeOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	target := repository.OrderStatus(req.Status)
	if !target.Valid() {
		respondError(w, http.StatusBadRequest, "Unknown order status")
		return
	}
	if req.Reason == "" {
		req.Reason = "manual status change"
	}

	order, err := s.storage.ChangeOrderStatus(r.Context(), id, target, actor(r), req.Reason)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleOrderHistory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	entries, err := s.storage.GetOrderHistory(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func (s *Server) handleOrderReturns(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	returns, err := s.storage.GetOrderReturns(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, returns)
}

func (s *Server) handleCreateReturn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID string `json:"order_id"`
		Reason  string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order id")
		return
	}
	if req.Reason == "" {
		req.Reason = "no reason"
	}

	ret, err := s.storage.CreateReturn(r.Context(), orderID, req.Reason, actor(r))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, ret)
}

func (s *Server) handleGetReturn(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid return id")
		return
	}

	ret, err := s.storage.GetReturn(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ret)
}

func (s *Server) handleChangeReturnStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid return id")
		return
	}

	var req struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	target := repository.ReturnStatus(req.Status)
	if !target.Valid() {
		respondError(w, http.StatusBadRequest, "Unknown return status")
		return
	}
	if req.Reason == "" {
		req.Reason = "manual"
	}

	ret, err := s.storage.ChangeReturnStatus(r.Context(), id, target, actor(r), req.Reason)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ret)
}

func (s *Server) handleReturnHistory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid return id")
		return
	}

	entries, err := s.storage.GetReturnHistory(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	job, err := s.storage.GetJob(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, job)
}
