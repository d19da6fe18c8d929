// cakesort - a cake-sorting puzzle game and AI solver.
// Copyright (C) 2025 Maria João Vieira.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

package puzzle

import (
	"encoding/json"
	"fmt"
	"net/http"
)

/*

RESTful wrappers over games, so it's easy to build web services
over States.  These mirror the shape of the golang API: each
handler sends the result (or an Error) to the web client and
returns it to the golang caller.

*/

// A Snapshot is the client-facing form of a State.  Cells and
// plates use the saved-game text encoding, which clients already
// have to understand for load/save.
type Snapshot struct {
	Level    int      `json:"level"`
	Score    int      `json:"score"`
	Moves    int      `json:"moves"`
	Win      bool     `json:"win"`
	GameOver bool     `json:"gameOver"`
	Rows     int      `json:"rows"`
	Cols     int      `json:"cols"`
	Cells    []string `json:"cells"`
	Visible  []string `json:"visible"`
	Queued   int      `json:"queued"`
	Used     int      `json:"used"`
	Limit    int      `json:"limit"`
}

// Snapshot returns the client-facing form of the state.  The
// cells come in row-major order.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Level:    s.Level,
		Score:    s.Score,
		Moves:    s.Moves,
		Win:      s.Win,
		GameOver: s.GameOver,
		Rows:     s.Board.Rows(),
		Cols:     s.Board.Cols(),
		Queued:   s.Supply.QueueCount(),
		Used:     s.Supply.Used(),
		Limit:    s.Supply.Limit(),
	}
	for r := 0; r < s.Board.Rows(); r++ {
		for c := 0; c < s.Board.Cols(); c++ {
			snap.Cells = append(snap.Cells, encodeCell(s.Board, r, c))
		}
	}
	for _, p := range s.Supply.Visible() {
		snap.Visible = append(snap.Visible, encodePlate(p))
	}
	return snap
}

// NewHandler is a POST handler that reads a JSON-encoded Config
// from the request body and creates a new game from it.  The new
// game's Snapshot is sent as a 200 response, and the game itself
// is returned to the golang caller.
//
// If we can't decode the posted Config, we send a 400 response
// and return the error to the caller.
func NewHandler(w http.ResponseWriter, r *http.Request) (*State, error) {
	dec := json.NewDecoder(r.Body)
	var cfg Config
	if e := dec.Decode(&cfg); e != nil {
		return nil, writeError(requestDecodingError, ErrorData{e.Error()}, w, r)
	}
	s := NewState(cfg)
	return s, s.StateHandler(w, r)
}

// StateHandler responds with the game's Snapshot.  If we can't
// encode the response to the client successfully, we give both
// the client and the golang caller an Error response.
func (s *State) StateHandler(w http.ResponseWriter, r *http.Request) error {
	if s == nil || s.Board == nil {
		return writeError(noGameError, ErrorData{r.URL.Path, "No game"}, w, r)
	}
	return writeJSON(s.Snapshot(), http.StatusOK, w, r)
}

// PlaceHandler is a POST handler that applies a posted Action to
// the game.  The poster and the caller both get the resulting
// Effects (or the Error).  A placement refused by the game (cell
// occupied, bad plate index) is a 400 with an ArgumentScope
// Error; the game is untouched in that case.
func (s *State) PlaceHandler(w http.ResponseWriter, r *http.Request) (*Effects, error) {
	if s == nil || s.Board == nil {
		return nil, writeError(noGameError, ErrorData{r.URL.Path, "No game"}, w, r)
	}
	dec := json.NewDecoder(r.Body)
	var action Action
	if e := dec.Decode(&action); e != nil {
		return nil, writeError(requestDecodingError, ErrorData{e.Error()}, w, r)
	}
	ok, effects := s.Place(action.Row, action.Col, action.Plate)
	if !ok {
		err := placeRefusedError(s, action)
		return nil, writeJSON(err, http.StatusBadRequest, w, r)
	}
	return &effects, writeJSON(effects, http.StatusOK, w, r)
}

// placeRefusedError builds the Error describing why a placement
// was refused.
func placeRefusedError(s *State, action Action) Error {
	var err Error
	switch {
	case !s.Board.IsValidPosition(action.Row, action.Col):
		err = rangeError(RowAttribute, action.Row, 0, s.Board.Rows()-1)
	case !s.Board.IsEmpty(action.Row, action.Col):
		err = Error{
			Scope:     ArgumentScope,
			Structure: ScopeStructure,
			Condition: OccupiedCellCondition,
			Values:    ErrorData{action.Row, action.Col},
		}
	default:
		err = Error{
			Scope:     SupplyScope,
			Structure: AttributeValueStructure,
			Attribute: PlateIndexAttribute,
			Condition: NoVisiblePlateCondition,
			Values:    ErrorData{action.Plate, action.Plate},
		}
	}
	err.Message = err.Error()
	return err
}

/*

Utilities

*/

type handlerError int

const (
	requestDecodingError handlerError = iota
	responseEncodingError
	noGameError
	errorFormatError
)

// writeError sends back a server error of the given type, sort
// of like http.Error, but it sends the JSON form of an
// appropriate Error.
func writeError(et handlerError, ed ErrorData,
	w http.ResponseWriter, r *http.Request) error {
	var err Error
	var status int
	switch et {
	case requestDecodingError:
		status = http.StatusBadRequest
		err = Error{
			Scope:     RequestScope,
			Structure: AttributeStructure,
			Attribute: DecodeAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	case responseEncodingError:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: EncodeAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	case noGameError:
		status = http.StatusNotFound
		err = Error{
			Scope:     RequestScope,
			Structure: AttributeValueStructure,
			Attribute: URLAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	default:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: LocationAttribute,
			Condition: GeneralCondition,
			Values: ErrorData{
				"writeError",
				fmt.Sprintf("Unknown handler error type (%v)", et),
			},
		}
	}
	err.Message = err.Error()
	return writeJSON(err, status, w, r)
}

// writeJSON is called by handlers to encode and send the client
// response.  It returns an appropriate error status for the
// handler to return to its caller: the encoding Error if
// encoding failed, the sent Error if the response itself was an
// Error, nil otherwise.
func writeJSON(obj interface{}, status int, w http.ResponseWriter, r *http.Request) error {
	err, isErr := obj.(Error)
	bytes, e := json.Marshal(obj)
	if e != nil {
		if isErr && err.Scope == InternalScope && err.Attribute == EncodeAttribute {
			// We just failed to encode an encoding error.  This
			// should never happen; if it did, the JSON encoder
			// is dead, so pseudo-encode the error by hand.
			status = http.StatusInternalServerError
			bytes = []byte(fmt.Sprintf("%q", err.Error()))
		} else {
			return writeError(responseEncodingError, ErrorData{e.Error()}, w, r)
		}
	}
	hs := w.Header()
	hs.Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
	if isErr {
		return err
	}
	return nil
}
