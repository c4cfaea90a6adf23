package viewmodel

import (
	"fmt"
	"strings"
)

// Fetch is the state of a single detail fetch as reported by the data source.
type Fetch[T any] struct {
	Data      *T
	IsLoading bool
	IsError   bool
}

// PageState is the terminal state of one render pass.
type PageState string

const (
	StateReady    PageState = "ready"
	StateLoading  PageState = "loading"
	StateFailed   PageState = "error"
	StateNotFound PageState = "not_found"
)

// Header is shared by every page: the resource it belongs to, its title and, for
// non-ready states, the single message that replaces the page body.
type Header struct {
	Resource string    `json:"resource"`
	Title    string    `json:"title"`
	State    PageState `json:"state"`
	Message  string    `json:"message,omitempty"`
}

// PageHeader exposes the header of any page embedding it.
func (h Header) PageHeader() Header { return h }

// Page is implemented by every projected page.
type Page interface {
	PageHeader() Header
}

type pageKind struct {
	resource string
	title    string
	noun     string
}

var (
	classPage      = pageKind{resource: "classes", title: "Class Details", noun: "class"}
	departmentPage = pageKind{resource: "departments", title: "Department Details", noun: "department"}
	subjectPage    = pageKind{resource: "subjects", title: "Subject Details", noun: "subject"}
	facultyPage    = pageKind{resource: "users", title: "Faculty Details", noun: "faculty"}
)

// StateMessage returns the fixed message a page shows in a non-ready state.
func (k pageKind) StateMessage(state PageState) string {
	switch state {
	case StateLoading:
		return fmt.Sprintf("Loading %s details...", k.noun)
	case StateFailed:
		return fmt.Sprintf("Failed to load %s details.", k.noun)
	case StateNotFound:
		return fmt.Sprintf("%s%s details not found.", strings.ToUpper(k.noun[:1]), k.noun[1:])
	default:
		return ""
	}
}

// settle applies the loading > error > not-found priority. When ok is false the returned
// header is the whole page and the payload must not be inspected.
func settle[T any](k pageKind, f Fetch[T]) (Header, *T, bool) {
	header := Header{Resource: k.resource, Title: k.title}
	switch {
	case f.IsLoading:
		header.State = StateLoading
	case f.IsError:
		header.State = StateFailed
	case f.Data == nil:
		header.State = StateNotFound
	default:
		header.State = StateReady
		return header, f.Data, true
	}
	header.Message = k.StateMessage(header.State)
	return header, nil, false
}
