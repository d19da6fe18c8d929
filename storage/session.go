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

package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/mariajvieira/feup-ia-CakeSortPuzzle/puzzle"
)

var log = logrus.New()

// A Session tracks a user's current game.  The session metadata
// lives both in the cache and the database; the game state
// itself is cached in its text encoding and rewritten on every
// move, so a session can always pick up exactly where it left
// off.
type Session struct {
	// these elements are persisted as part of the session
	SID     string // session ID
	Level   int    // level of the current game
	Created string // RFC3339 time when the session was created
	Saved   string // RFC3339 time when the session was last saved

	// the game state is persisted separately, in its text encoding
	State *puzzle.State `redis:"-"` // state of the current game
}

/*

session manipulation

*/

// NewSession: find or create the session with the given ID.  New
// sessions start a level-1 game immediately, so a returned
// session always has a playable state.
func NewSession(sid string) *Session {
	session := &Session{SID: sid}
	if session.Lookup() {
		session.LoadState()
		log.Printf("Reloaded session %v at level %d.", session.SID, session.Level)
	} else {
		session.Created = time.Now().Format(time.RFC3339)
		session.databaseInsert()
		session.StartGame(1)
		log.Printf("Created session %v.", session.SID)
	}
	return session
}

// StartGame: replace the session's game with a fresh one at the
// given level.  Out-of-range levels fall back to level 1.
func (session *Session) StartGame(level int) {
	if level < 1 {
		level = 1
	}
	session.Level = level
	session.State = puzzle.NewState(puzzle.Config{Level: level})
	session.SaveState()
	log.Printf("Reset session %v to a new level %d game.", session.SID, session.Level)
}

// SaveState: write the session metadata and the current game
// state to the cache, and update the database's copy of the
// metadata.
func (session *Session) SaveState() {
	session.Saved = time.Now().Format(time.RFC3339)
	encoded := session.marshalState()
	body := func(tx redis.Conn) (err error) {
		tx.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		_, err = tx.Do("SET", session.stateKey(), encoded)
		if err != nil {
			log.Printf("Redis error on save of session %q: %v", session.SID, err)
		}
		return
	}
	rdExecute(body)
	session.databaseUpdate()
}

// Lookup: load the session metadata for the session's ID from
// the cache, falling back to the database when the cache has
// been cleared.  Returns whether the session was found.
func (session *Session) Lookup() (found bool) {
	body := func(tx redis.Conn) error {
		vals, err := redis.Values(tx.Do("HGETALL", session.key()))
		if len(vals) > 0 {
			if err := redis.ScanStruct(vals, session); err != nil {
				log.Printf("Redis error on parse of saved session %q: %v", session.SID, err)
				return err
			}
			found = true
			return nil
		}
		if err != nil {
			log.Printf("Redis error on load of session %q: %v", session.SID, err)
			return err
		}
		return nil
	}
	rdExecute(body)
	if !found {
		found = session.databaseLookup()
	}
	return
}

// LoadState: load the current game state from the cache.  If the
// cached state has been lost, start a fresh game at the
// session's level.
func (session *Session) LoadState() {
	var encoded []byte
	body := func(tx redis.Conn) (err error) {
		encoded, err = redis.Bytes(tx.Do("GET", session.stateKey()))
		if err == redis.ErrNil {
			err = nil
		} else if err != nil {
			log.Printf("Error on load of session %q state: %v", session.SID, err)
		}
		return
	}
	rdExecute(body)
	if len(encoded) == 0 {
		log.Printf("No cached state for session %q; starting over.", session.SID)
		session.StartGame(session.Level)
		return
	}
	session.unmarshalState(encoded)
}

// Delete: remove the session and its game state from the cache
// and the database.
func (session *Session) Delete() {
	body := func(tx redis.Conn) (err error) {
		tx.Send("DEL", session.key())
		_, err = tx.Do("DEL", session.stateKey())
		return
	}
	rdExecute(body)
	dbBody := func(ctx context.Context, tx pgx.Tx) (err error) {
		_, err = tx.Exec(ctx, "DELETE FROM sessions WHERE sessionId = $1", session.SID)
		return
	}
	pgExecute(dbBody)
	log.Printf("Deleted session %v.", session.SID)
}

/*

serialization of game state into and out of the cache

*/

// marshalState - get the text encoding of the current game
func (session *Session) marshalState() []byte {
	var buf bytes.Buffer
	if err := session.State.Write(&buf); err != nil {
		log.Printf("Failed to encode state of session %q: %v", session.SID, err)
		panic(err)
	}
	return buf.Bytes()
}

// unmarshalState - reconstruct the game from its saved encoding
func (session *Session) unmarshalState(encoded []byte) {
	state, err := puzzle.Read(strings.NewReader(string(encoded)))
	if err != nil {
		log.Printf("Failed to decode saved state of session %q: %v", session.SID, err)
		panic(err)
	}
	session.State = state
}

/*

database persistence of session metadata

*/

// databaseInsert: insert the session into the database.  Panics
// if there is already a saved session with the same id.
func (session *Session) databaseInsert() {
	body := func(ctx context.Context, tx pgx.Tx) (err error) {
		_, err = tx.Exec(ctx,
			"INSERT INTO sessions (sessionId, level, created, saved) "+
				"VALUES ($1, $2, $3, $4)",
			session.SID, session.Level, session.Created, session.Saved)
		if err != nil {
			err = fmt.Errorf("Database error saving session %q: %v", session.SID, err)
		}
		return
	}
	pgExecute(body)
}

// databaseUpdate: push the session metadata to the database.
func (session *Session) databaseUpdate() {
	body := func(ctx context.Context, tx pgx.Tx) (err error) {
		_, err = tx.Exec(ctx,
			"UPDATE sessions SET level = $2, saved = $3 WHERE sessionId = $1",
			session.SID, session.Level, session.Saved)
		if err != nil {
			err = fmt.Errorf("Database error updating session %q: %v", session.SID, err)
		}
		return
	}
	pgExecute(body)
}

// databaseLookup: load the session metadata from the database.
// Returns whether a saved session was found.
func (session *Session) databaseLookup() (found bool) {
	body := func(ctx context.Context, tx pgx.Tx) error {
		row := tx.QueryRow(ctx,
			"SELECT level, created, saved FROM sessions WHERE sessionId = $1",
			session.SID)
		err := row.Scan(&session.Level, &session.Created, &session.Saved)
		if err == pgx.ErrNoRows {
			return nil
		}
		if err != nil {
			return fmt.Errorf("Failure looking up session %q: %v", session.SID, err)
		}
		found = true
		return nil
	}
	pgExecute(body)
	return
}

/*

session key generation

*/

// key - returns the session key
func (session *Session) key() string {
	return rdEnv + ":SID:" + session.SID
}

// stateKey - returns the key for the session's game state
func (session *Session) stateKey() string {
	return session.key() + ":State"
}
