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
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with a game or a requested
// operation.  It can produce an error message in English, but
// its main function is to support localized error messaging by
// clients: it tells the client "this thing failed to meet this
// condition" and carries supplemental details about both.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Structure ErrorStructure `json:"structure,omitempty"`
	Condition ErrorCondition `json:"condition,omitempty"`
	Attribute ErrorAttribute `json:"attribute,omitempty"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what type of thing the error refers
// to: a client-supplied argument, a part of the game, the stored
// game format, or a place in the code for internal failures.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	RequestScope
	ArgumentScope
	BoardScope
	SupplyScope
	FormatScope
	InternalScope
	MaxScope
)

// The ErrorStructure denotes whether the problem is in the
// overall Scope, an Attribute of the Scope, or the value of an
// Attribute of the Scope.
type ErrorStructure int

// Constants for the various structure codes.
const (
	UnknownStructure ErrorStructure = iota
	ScopeStructure
	AttributeStructure
	AttributeValueStructure
	MaxStructure
)

// The ErrorCondition is the predicate that the
// scope/attribute/value failed to satisfy.  There are named
// predicates for the known failures and a "general" (arbitrary
// English string) predicate for runtime errors.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	GeneralCondition
	TooLargeCondition
	TooSmallCondition
	OccupiedCellCondition
	NoVisiblePlateCondition
	UnknownAlgorithmCondition
	MissingSectionCondition
	WrongLineCountCondition
	BadCellValueCondition
	MaxCondition
)

// An ErrorAttribute names the attribute that has a problem.
type ErrorAttribute int

// Constants for the various attribute codes.
const (
	UnknownAttribute ErrorAttribute = iota
	DecodeAttribute
	EncodeAttribute
	URLAttribute
	LocationAttribute
	RowAttribute
	ColAttribute
	PlateIndexAttribute
	LevelAttribute
	SectionAttribute
	CellAttribute
	AlgorithmAttribute
	MaxAttribute
)

// The ErrorData provides details about the thing that failed to
// meet the predicate (such as the value of an attribute) as well
// as the predicate itself (such as minimum required values).
//
// Every item in the slice of ErrorData is required to be
// JSON-serializable, so it can be returned to web clients.
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will
// produce an appropriate (English, non-localized) message.
func (e Error) Error() string {
	es := e.Message
	if len(es) > 0 {
		return es
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	switch e.Scope {
	case RequestScope:
		es = "Invalid request: "
	case ArgumentScope:
		es = "Invalid argument: "
	case BoardScope:
		es = "Problem on the board: "
	case SupplyScope:
		es = "Problem in the plate supply: "
	case FormatScope:
		es = "Invalid saved game: "
	case InternalScope:
		es = "Internal logic error: "
	default:
		es = "Unknown error: "
	}
	if e.Structure == AttributeStructure || e.Structure == AttributeValueStructure {
		switch e.Attribute {
		case DecodeAttribute:
			es += "JSON Decode error"
		case EncodeAttribute:
			es += "JSON Encode error"
		case URLAttribute:
			es += "Resource path"
		case LocationAttribute:
			es += fmt.Sprintf("In puzzle.%v", nextVal())
		case RowAttribute:
			es += "Row"
		case ColAttribute:
			es += "Column"
		case PlateIndexAttribute:
			es += "Plate index"
		case LevelAttribute:
			es += "Level"
		case SectionAttribute:
			es += "Section"
		case CellAttribute:
			es += "Cell"
		case AlgorithmAttribute:
			es += "Algorithm"
		default:
			es += "<Unknown attribute>"
		}
		if e.Structure == AttributeValueStructure {
			es += " (" + fmt.Sprint(nextVal()) + ")"
		}
		es += ": "
	}
	switch e.Condition {
	case GeneralCondition:
		es += fmt.Sprint(nextVal())
	case TooLargeCondition:
		es += fmt.Sprintf("Must be at most %v", nextVal())
	case TooSmallCondition:
		es += fmt.Sprintf("Must be at least %v", nextVal())
	case OccupiedCellCondition:
		es += fmt.Sprintf("Cell (%v, %v) already holds a plate", nextVal(), nextVal())
	case NoVisiblePlateCondition:
		es += fmt.Sprintf("No visible plate at index %v", nextVal())
	case UnknownAlgorithmCondition:
		es += "Not a known search algorithm"
	case MissingSectionCondition:
		es += fmt.Sprintf("Expected section marker %q", nextVal())
	case WrongLineCountCondition:
		es += fmt.Sprintf("Expected %v lines, found %v", nextVal(), nextVal())
	case BadCellValueCondition:
		es += fmt.Sprintf("Can't parse cell %q", nextVal())
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}

// rangeError returns an Error that describes an out-of-range
// argument.
func rangeError(attr ErrorAttribute, val int, min int, max int) Error {
	err := Error{
		Scope:     ArgumentScope,
		Structure: AttributeValueStructure,
		Attribute: attr,
		Condition: TooLargeCondition,
		Values:    ErrorData{val, max},
	}
	if val < min {
		err.Condition = TooSmallCondition
		err.Values[1] = min
	}
	return err
}

// formatError returns an Error describing a malformed saved-game
// record.
func formatError(cond ErrorCondition, attr ErrorAttribute, values ...interface{}) Error {
	err := Error{
		Scope:     FormatScope,
		Structure: AttributeStructure,
		Attribute: attr,
		Condition: cond,
		Values:    ErrorData(values),
	}
	err.Message = err.Error()
	return err
}
