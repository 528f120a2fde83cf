package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/lifegrid/internal/pipeline"
	"github.com/jonathan/lifegrid/internal/types"
)

// handleGrid runs the full grid-construction pipeline on the request body.
func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	var req types.GridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := pipeline.Run(r.Context(), pipeline.RunOptions{
		BirthDate:         req.BirthDate,
		StartYear:         req.StartYear,
		EndYear:           req.EndYear,
		Personal:          req.Personal,
		World:             req.World,
		President:         req.President,
		IncludeWorld:      req.IncludeWorld,
		IncludePresident:  req.IncludePresident,
		ShowPersonalDates: req.ShowPersonalDates,
		Compact:           req.Compact,
		MeasuredWidth:     req.MeasuredWidth,
		ViewportWidth:     req.ViewportWidth,
		Palette:           req.Palette,
	})
	if err != nil {
		renderErr := &ErrRender{Message: err.Error()}
		s.errorResponse(w, HTTPStatus(renderErr), renderErr.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
