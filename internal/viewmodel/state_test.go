package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/sma-adp-views/internal/models"
)

func TestSettlePriority(t *testing.T) {
	data := &models.ClassRecord{ID: "c1"}
	cases := []struct {
		name  string
		fetch Fetch[models.ClassRecord]
		state PageState
		msg   string
	}{
		{name: "loading beats error", fetch: Fetch[models.ClassRecord]{IsLoading: true, IsError: true, Data: data}, state: StateLoading, msg: "Loading class details..."},
		{name: "error beats data", fetch: Fetch[models.ClassRecord]{IsError: true, Data: data}, state: StateFailed, msg: "Failed to load class details."},
		{name: "missing data", fetch: Fetch[models.ClassRecord]{}, state: StateNotFound, msg: "Class details not found."},
		{name: "ready", fetch: Fetch[models.ClassRecord]{Data: data}, state: StateReady},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			header, got, ok := settle(classPage, tc.fetch)
			assert.Equal(t, tc.state, header.State)
			assert.Equal(t, tc.msg, header.Message)
			assert.Equal(t, "Class Details", header.Title)
			assert.Equal(t, tc.state == StateReady, ok)
			if !ok {
				assert.Nil(t, got)
			}
		})
	}
}

func TestStateMessagesPerPage(t *testing.T) {
	p := NewProjector(ProjectorConfig{})

	assert.Equal(t, "Failed to load department details.", p.Department(Fetch[models.DepartmentDetails]{IsError: true}).Message)
	assert.Equal(t, "Subject details not found.", p.Subject(Fetch[models.SubjectDetails]{}).Message)
	assert.Equal(t, "Loading faculty details...", p.Faculty(Fetch[models.FacultyPayload]{IsLoading: true}).Message)

	faculty := p.Faculty(Fetch[models.FacultyPayload]{})
	assert.Equal(t, "users", faculty.Resource)
	assert.Equal(t, "Faculty Details", faculty.Title)
	assert.Equal(t, "Faculty details not found.", faculty.Message)
	assert.Nil(t, faculty.Profile)
}
