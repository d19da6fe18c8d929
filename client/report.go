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

package client

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mariajvieira/feup-ia-CakeSortPuzzle/bench"
	"github.com/mariajvieira/feup-ia-CakeSortPuzzle/search"
)

/*

benchmark report page

*/

// A templateReportPage contains the values to fill the report
// page template.
type templateReportPage struct {
	Title, TopHead    string
	RunCount          int
	Algorithms        []templateReportRow
	Heuristics        []templateReportRow
	ApplicationFooter string
}

// A templateReportRow is one aggregate line of the report table.
type templateReportRow struct {
	Key         string
	Runs        int
	SuccessRate string
	AvgTime     string
	AvgMoves    string
}

// reportRows renders aggregates into table rows.
func reportRows(aggs []bench.Aggregate) []templateReportRow {
	rows := make([]templateReportRow, 0, len(aggs))
	for _, agg := range aggs {
		rows = append(rows, templateReportRow{
			Key:         agg.Key,
			Runs:        agg.Runs,
			SuccessRate: fmt.Sprintf("%.1f%%", agg.SuccessRate()*100),
			AvgTime:     fmt.Sprintf("%.3fs", agg.AvgTime),
			AvgMoves:    fmt.Sprintf("%.1f", agg.AvgPathLength),
		})
	}
	return rows
}

// ReportPage executes the report page template over the passed
// solver run records, and returns the report page content as a
// string.  If there is an error, what's returned is the error
// page content as a string.
func ReportPage(results []search.Result) string {
	trp := templateReportPage{
		Title:             fmt.Sprintf("%s: Solver Report", brandName),
		TopHead:           "Solver Report",
		RunCount:          len(results),
		Algorithms:        reportRows(bench.ByAlgorithm(results)),
		Heuristics:        reportRows(bench.ByHeuristic(results, "combined")),
		ApplicationFooter: applicationFooter(),
	}

	tmpl, err := loadPageTemplate("report")
	if err != nil {
		return ErrorPage(fmt.Errorf("Couldn't load the %q template: %v", "report", err))
	}
	buf := new(bytes.Buffer)
	err = tmpl.Execute(buf, trp)
	if err != nil {
		return ErrorPage(err)
	}
	return buf.String()
}

/*

error pages

*/

// A templateErrorPage contains the values to fill the error page
// template.
type templateErrorPage struct {
	Title, TopHead, Message string
	ApplicationFooter       string
}

// ErrorPage returns error page content
func ErrorPage(e error) string {
	tep := templateErrorPage{
		Title:             fmt.Sprintf("%s: Error", brandName),
		TopHead:           "Error Page",
		Message:           e.Error(),
		ApplicationFooter: applicationFooter(),
	}

	tmpl, err := loadPageTemplate("error")
	if err != nil {
		return fmt.Sprintf("Couldn't load the %q template: %v", "error", err)
	}

	buf := new(bytes.Buffer)
	err = tmpl.Execute(buf, tep)
	if err != nil {
		return fmt.Sprintf("A templating error has occurred: %v", err)
	}
	return buf.String()
}

/*

application footer

*/

const (
	applicationNameEnvVar    = "APPLICATION_NAME"
	applicationEnvEnvVar     = "APPLICATION_ENV"
	applicationVersionEnvVar = "APPLICATION_VERSION"
)

// applicationFooter - the application footer that shows at the
// bottom of all pages.
func applicationFooter() string {
	appName := os.Getenv(applicationNameEnvVar)
	appEnv := os.Getenv(applicationEnvEnvVar)
	appVersion := os.Getenv(applicationVersionEnvVar)

	if appName == "" {
		appName = brandName
	}
	if appEnv == "" {
		appEnv = "local"
	}
	if appVersion != "" {
		appVersion = " " + appVersion
	}

	switch appEnv {
	case "local":
		return "[" + appName + " local]"
	case "dev":
		return "[" + appName + " CI/CD]"
	default:
		return "[" + appName + appVersion + "]"
	}
}
