package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tripplanner/internal/budget"
	"tripplanner/internal/models"
	"tripplanner/internal/service"
)

type tripRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
}

type tripResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"`
	OrganizerID int64   `json:"organizer_id"`
	CreatedAt   int64   `json:"created_at"`
}

func toTripResponse(t *models.Trip) tripResponse {
	return tripResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Budget:      t.Budget,
		OrganizerID: t.OrganizerID,
		CreatedAt:   t.CreatedAt,
	}
}

type memberResponse struct {
	UserID   int64  `json:"user_id"`
	Nickname string `json:"nickname"`
	JoinedAt int64  `json:"joined_at"`
}

type expenseResponse struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Amount    float64 `json:"amount"`
	PayerID   int64   `json:"payer_id"`
	CreatedAt int64   `json:"created_at"`
}

type payerTotalResponse struct {
	PayerID int64   `json:"payer_id"`
	Total   float64 `json:"total"`
}

type summaryResponse struct {
	TotalSpent       float64              `json:"total_spent"`
	Remaining        float64              `json:"remaining"`
	OverBudget       bool                 `json:"over_budget"`
	AveragePerPerson float64              `json:"average_per_person"`
	PerPayer         []payerTotalResponse `json:"per_payer"`
}

func toSummaryResponse(s budget.Summary) summaryResponse {
	perPayer := make([]payerTotalResponse, len(s.PerPayer))
	for i, p := range s.PerPayer {
		perPayer[i] = payerTotalResponse{PayerID: p.PayerID, Total: p.Total}
	}
	return summaryResponse{
		TotalSpent:       s.TotalSpent,
		Remaining:        s.Remaining,
		OverBudget:       s.OverBudget,
		AveragePerPerson: s.AveragePerPerson,
		PerPayer:         perPayer,
	}
}

type tripDetailResponse struct {
	tripResponse
	Members  []memberResponse  `json:"members"`
	Expenses []expenseResponse `json:"expenses"`
	Summary  summaryResponse   `json:"summary"`
}

func toTripDetailResponse(d *service.TripDetail) tripDetailResponse {
	members := make([]memberResponse, len(d.Members))
	for i, m := range d.Members {
		members[i] = memberResponse{UserID: m.UserID, Nickname: m.Nickname, JoinedAt: m.JoinedAt}
	}
	expenses := make([]expenseResponse, len(d.Expenses))
	for i, e := range d.Expenses {
		expenses[i] = expenseResponse{ID: e.ID, Title: e.Title, Amount: e.Amount, PayerID: e.PayerID, CreatedAt: e.CreatedAt}
	}
	return tripDetailResponse{
		tripResponse: toTripResponse(&d.Trip),
		Members:      members,
		Expenses:     expenses,
		Summary:      toSummaryResponse(d.Summary),
	}
}

// tripID parses the {tripID} route parameter. A non-numeric ID can't name
// any trip, so it reports false after answering 404.
func tripID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "tripID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusNotFound, "Not found")
		return 0, false
	}
	return id, true
}

func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := CurrentUser(r.Context())
	trip, err := s.trips.Create(r.Context(), user.ID, req.Name, req.Description, req.Budget)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toTripResponse(trip))
}

func (s *Server) handleListTrips(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r.Context())
	trips, err := s.trips.ListForUser(r.Context(), user.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	resp := make([]tripResponse, len(trips))
	for i := range trips {
		resp[i] = toTripResponse(&trips[i])
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	user := CurrentUser(r.Context())
	detail, err := s.trips.Get(r.Context(), user.ID, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toTripDetailResponse(detail))
}

func (s *Server) handleUpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	var req tripRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := CurrentUser(r.Context())
	trip, err := s.trips.Update(r.Context(), user.ID, id, req.Name, req.Description, req.Budget)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toTripResponse(trip))
}

func (s *Server) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	user := CurrentUser(r.Context())
	if err := s.trips.Delete(r.Context(), user.ID, id); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddMember(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	var req struct {
		Nickname string `json:"nickname"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := CurrentUser(r.Context())
	if _, err := s.trips.AddMember(r.Context(), user.ID, id, req.Nickname); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, messageResponse{Message: "Member added successfully"})
}

func (s *Server) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	user := CurrentUser(r.Context())
	if err := s.trips.RemoveMember(r.Context(), user.ID, id, chi.URLParam(r, "nickname")); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	var req struct {
		Title  string  `json:"title"`
		Amount float64 `json:"amount"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := CurrentUser(r.Context())
	expense, err := s.trips.AddExpense(r.Context(), user.ID, id, req.Title, req.Amount)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, expenseResponse{
		ID:        expense.ID,
		Title:     expense.Title,
		Amount:    expense.Amount,
		PayerID:   expense.PayerID,
		CreatedAt: expense.CreatedAt,
	})
}
