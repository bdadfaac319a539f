// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package columns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/tblsort/internal/comparator"
)

func TestNewBindings(t *testing.T) {
	cfg := map[string]string{"Section": "SECTION_NAME", "Points": "constsum-options-points"}
	flags := []string{"Section=team_name", "Role=INSTRUCTOR_PERMISSION_ROLE"}

	b, err := NewBindings(flags, cfg)
	require.NoError(t, err)
	assert.Equal(t, Bindings{
		"Section": comparator.SortTeamName,
		"Points":  comparator.SortConstSumOptionsPoints,
		"Role":    comparator.SortInstructorPermissionRole,
	}, b)
}

func TestNewBindingsErrors(t *testing.T) {
	_, err := NewBindings([]string{"Section"}, nil)
	assert.Error(t, err)

	_, err = NewBindings([]string{"=SECTION_NAME"}, nil)
	assert.Error(t, err)

	_, err = NewBindings([]string{"Section=SECTIONS"}, nil)
	assert.ErrorIs(t, err, comparator.ErrUnknownColumn)

	_, err = NewBindings(nil, map[string]string{"Section": "nope"})
	assert.ErrorIs(t, err, comparator.ErrUnknownColumn)
}

func TestResolve(t *testing.T) {
	b := Bindings{"Created": comparator.SortCourseCreationDate}

	got, err := b.Resolve("Created")
	require.NoError(t, err)
	assert.Equal(t, comparator.SortCourseCreationDate, got)

	got, err = b.Resolve("section_name")
	require.NoError(t, err)
	assert.Equal(t, comparator.SortSectionName, got)

	_, err = b.Resolve("Notes")
	assert.ErrorIs(t, err, ErrUnbound)
	assert.ErrorContains(t, err, "--by Notes=SORT_BY")
}

func TestStrategy(t *testing.T) {
	b := Bindings{"Team": comparator.SortTeamName}

	s, err := b.Strategy("Team")
	require.NoError(t, err)
	assert.Equal(t, -1, s("Team 2", "Team 11", comparator.Ascending))

	_, err = b.Strategy("Other")
	assert.ErrorIs(t, err, ErrUnbound)
}
