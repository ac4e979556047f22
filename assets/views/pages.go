// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"strconv"

	"github.com/a-h/templ"
)

// Layout is the HTML document shell. theme is applied as data-theme on <html>.
func Layout(theme, title string, body ...templ.Component) templ.Component {
	return sequence(
		static("<!DOCTYPE html>\n<html"),
		Attr("data-theme", theme),
		static(">\n<head><meta charset=\"utf-8\">"),
		Element("title", Text(title)),
		static("</head>\n<body>\n"),
		sequence(body...),
		static("\n</body>\n</html>\n"),
	)
}

// IndexData is the data shown on the home page.
type IndexData struct {
	Theme          string
	ResultsPerPage int
}

// Index is the home page.
func Index(data IndexData) templ.Component {
	return Layout(data.Theme, "Home",
		Element("h1", Text("Home")),
		Element("p", Text("Theme: "+data.Theme)),
		Element("p", Text("Results per page: "+strconv.Itoa(data.ResultsPerPage))),
	)
}

// ErrorData describes an error page.
type ErrorData struct {
	Theme     string
	RequestID string
	// Message is shown on 400 pages only.
	Message string
}

// NotFound is the 404 page.
func NotFound(data ErrorData) templ.Component {
	return Layout(data.Theme, "Page Not Found",
		Element("h2", Text("Page Not Found")),
		Element("p", Text("Could not find requested resource")),
	)
}

// BadRequest is the 400 page. It shows data.Message.
func BadRequest(data ErrorData) templ.Component {
	return Layout(data.Theme, "Bad Request",
		Element("h2", Text("Bad Request")),
		Element("p", Text(data.Message)),
	)
}

// InternalError is the generic error page. Only the request ID is shown.
func InternalError(data ErrorData) templ.Component {
	return Layout(data.Theme, "Error",
		Element("h2", Text("Something went wrong")),
		Element("p", Text("Request ID: "+data.RequestID)),
	)
}
