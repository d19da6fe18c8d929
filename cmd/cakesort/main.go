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

package main

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mariajvieira/feup-ia-CakeSortPuzzle/client"
	"github.com/mariajvieira/feup-ia-CakeSortPuzzle/puzzle"
	"github.com/mariajvieira/feup-ia-CakeSortPuzzle/search"
	"github.com/mariajvieira/feup-ia-CakeSortPuzzle/storage"
)

const cookieName = "cakesortID"
const cookiePath = "/"

var log = logrus.New()

/*

session selection

*/

var (
	sessions     = make(map[string]*storage.Session)
	sessionMutex sync.RWMutex
)

// getCookie gets the session cookie, or sets a new one.  It
// returns the session ID associated with the cookie.
func getCookie(w http.ResponseWriter, r *http.Request) string {
	if sc, e := r.Cookie(cookieName); e == nil && sc.Value != "" {
		if _, e := uuid.Parse(sc.Value); e == nil {
			return sc.Value
		}
	}
	// no session cookie or not a valid session cookie,
	// start a new session with a new cookie
	sid := uuid.NewString()
	sc := &http.Cookie{Name: cookieName, Value: sid, Path: cookiePath}
	http.SetCookie(w, sc)
	return sid
}

// since session selection can happen concurrently from
// simultaneous goroutines, it has to be interlocked
func sessionSelect(w http.ResponseWriter, r *http.Request) *storage.Session {
	sessionID := getCookie(w, r)
	sessionMutex.RLock()
	session, ok := sessions[sessionID]
	sessionMutex.RUnlock()
	if ok && session != nil {
		return session
	}
	// load or create the session and remember it
	session = storage.NewSession(sessionID)
	sessionMutex.Lock()
	sessions[sessionID] = session
	sessionMutex.Unlock()
	return session
}

/*

request handling

*/

// apiHandler dispatches one API request against the session's
// game.
func apiHandler(session *storage.Session, w http.ResponseWriter, r *http.Request) {
	switch {
	case strings.HasPrefix(r.URL.Path, "/api/new"):
		newGameHandler(session, w, r)
	case strings.HasPrefix(r.URL.Path, "/api/state"):
		session.State.StateHandler(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/place"):
		if _, e := session.State.PlaceHandler(w, r); e == nil {
			session.SaveState()
		}
	case strings.HasPrefix(r.URL.Path, "/api/solve"):
		solveHandler(session, w, r)
	case strings.HasPrefix(r.URL.Path, "/api/results"):
		resultsHandler(w, r)
	default:
		http.NotFound(w, r)
	}
}

// newGameHandler starts a fresh game for the session.  The
// posted body may carry a level; an empty or malformed body
// restarts at the session's current level.
func newGameHandler(session *storage.Session, w http.ResponseWriter, r *http.Request) {
	var body struct {
		Level int `json:"level"`
	}
	level := session.Level
	if e := json.NewDecoder(r.Body).Decode(&body); e == nil && body.Level > 0 {
		level = body.Level
	}
	session.StartGame(level)
	session.State.StateHandler(w, r)
}

// A solveResponse carries one solver run back to the client: the
// run record plus the action path, so the client can animate the
// solution move by move.
type solveResponse struct {
	Result search.Result   `json:"result"`
	Path   []puzzle.Action `json:"path"`
}

// solveHandler runs the requested algorithm against a clone of
// the session's game and records the run.
func solveHandler(session *storage.Session, w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("algorithm")
	if name == "" {
		name = "astar"
	}
	ad, ok := search.LookupAlgorithmByName(name)
	if !ok {
		e := puzzle.Error{
			Scope:     puzzle.ArgumentScope,
			Structure: puzzle.AttributeValueStructure,
			Attribute: puzzle.AlgorithmAttribute,
			Condition: puzzle.UnknownAlgorithmCondition,
			Values:    puzzle.ErrorData{name, name},
		}
		e.Message = e.Error()
		bytes, _ := json.Marshal(e)
		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write(bytes)
		return
	}
	initial := session.State.Clone()
	start := time.Now()
	success, path := ad.Solve(initial)
	elapsed := time.Since(start)
	result := search.NewResult(ad, initial, success, path, elapsed)
	storage.SaveResult(result)
	log.Printf("Ran %q for session %v: success=%t, %d moves, %.3fs.",
		result.Algorithm, session.SID, success, len(path), result.ExecutionTime)

	bytes, e := json.Marshal(solveResponse{Result: result, Path: path})
	if e != nil {
		http.Error(w, e.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(bytes)
}

// reportHandler renders the HTML report over all the recorded
// solver runs.
func reportHandler(w http.ResponseWriter, r *http.Request) {
	body := client.ReportPage(storage.RecentResults(0))
	w.Header().Add("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

// resultsHandler returns the most recent solver runs, newest
// first.
func resultsHandler(w http.ResponseWriter, r *http.Request) {
	results := storage.RecentResults(50)
	bytes, e := json.Marshal(results)
	if e != nil {
		http.Error(w, e.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(bytes)
}

// serveHTTP is the root handler: it recovers storage panics,
// binds the session, and dispatches.
func serveHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if err := recover(); err != nil {
			log.Errorf("Handler failure on %s %s: %v", r.Method, r.URL.Path, err)
			http.Error(w, "Storage failure; please retry.", http.StatusInternalServerError)
		}
	}()
	log.Printf("Handling %s %s...", r.Method, r.URL.Path)
	if client.StaticHandler(w, r) {
		return
	}
	if strings.HasPrefix(r.URL.Path, "/report") {
		reportHandler(w, r)
		return
	}
	session := sessionSelect(w, r)
	if strings.HasPrefix(r.URL.Path, "/api/") {
		apiHandler(session, w, r)
		return
	}
	http.Redirect(w, r, "/api/state", http.StatusFound)
}

func main() {
	log.Formatter = &logrus.TextFormatter{FullTimestamp: true}

	cacheId, databaseId, err := storage.Connect()
	if err != nil {
		log.Fatalf("Storage initialization failure: %v", err)
	}
	defer storage.Close()
	log.Printf("Connected to cache at %q.", cacheId)
	log.Printf("Connected to database at %q.", databaseId)

	if err := client.VerifyResources(); err != nil {
		log.Warnf("Static resources not found, report page disabled: %v", err)
	}

	http.HandleFunc("/", serveHTTP)

	// Heroku environment port sensing
	port := os.Getenv("PORT")
	if port == "" {
		// running locally in dev mode
		port = "localhost:8080"
	} else {
		// running as a true server
		port = ":" + port
	}

	log.Printf("Listening on %s...", port)
	if err := http.ListenAndServe(port, nil); err != nil {
		log.Fatalf("Listener failure: %v", err)
	}
}
