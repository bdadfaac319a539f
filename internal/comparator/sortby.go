// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package comparator

import (
	"fmt"
	"sort"
	"strings"
)

// SortBy identifies a table column by what it holds. Each value is bound to a
// Kind in the bindings table below.
type SortBy string

const (
	SortNone SortBy = "NONE"

	SortSectionName                  SortBy = "SECTION_NAME"
	SortTeamName                     SortBy = "TEAM_NAME"
	SortSessionName                  SortBy = "SESSION_NAME"
	SortQuestionType                 SortBy = "QUESTION_TYPE"
	SortQuestionText                 SortBy = "QUESTION_TEXT"
	SortGiverTeam                    SortBy = "GIVER_TEAM"
	SortGiverName                    SortBy = "GIVER_NAME"
	SortRecipientTeam                SortBy = "RECIPIENT_TEAM"
	SortRecipientName                SortBy = "RECIPIENT_NAME"
	SortRankRecipientsTeam           SortBy = "RANK_RECIPIENTS_TEAM"
	SortRankRecipientsRecipient      SortBy = "RANK_RECIPIENTS_RECIPIENT"
	SortMCQChoice                    SortBy = "MCQ_CHOICE"
	SortRubricChoice                 SortBy = "RUBRIC_CHOICE"
	SortConstSumOptionsOption        SortBy = "CONSTSUM_OPTIONS_OPTION"
	SortConstSumRecipientsTeam       SortBy = "CONSTSUM_RECIPIENTS_TEAM"
	SortConstSumRecipientsRecipient  SortBy = "CONSTSUM_RECIPIENTS_RECIPIENT"
	SortRespondentName               SortBy = "RESPONDENT_NAME"
	SortRespondentEmail              SortBy = "RESPONDENT_EMAIL"
	SortStudentName                  SortBy = "STUDENT_NAME"
	SortStudentEmail                 SortBy = "STUDENT_EMAIL"
	SortInstructorName               SortBy = "INSTRUCTOR_NAME"
	SortInstructorEmail              SortBy = "INSTRUCTOR_EMAIL"
	SortCourseID                     SortBy = "COURSE_ID"
	SortCourseName                   SortBy = "COURSE_NAME"
	SortInstitution                  SortBy = "INSTITUTION"
	SortJoinStatus                   SortBy = "JOIN_STATUS"
	SortSessionStatus                SortBy = "SESSION_STATUS"
	SortMCQWeight                    SortBy = "MCQ_WEIGHT"
	SortMCQResponseCount             SortBy = "MCQ_RESPONSE_COUNT"
	SortMCQPercentage                SortBy = "MCQ_PERCENTAGE"
	SortMCQWeightedPercentage        SortBy = "MCQ_WEIGHTED_PERCENTAGE"
	SortRubricWeightAverage          SortBy = "RUBRIC_WEIGHT_AVERAGE"
	SortRubricTotalChosenWeight      SortBy = "RUBRIC_TOTAL_CHOSEN_WEIGHT"
	SortConstSumOptionsPoints        SortBy = "CONSTSUM_OPTIONS_POINTS"
	SortConstSumRecipientsPoints     SortBy = "CONSTSUM_RECIPIENTS_POINTS"
	SortRankRecipientsSelfRank       SortBy = "RANK_RECIPIENTS_SELF_RANK"
	SortRankRecipientsOverallRank    SortBy = "RANK_RECIPIENTS_OVERALL_RANK"
	SortRankRecipientsOverallRankExc SortBy = "RANK_RECIPIENTS_OVERALL_RANK_EXCLUDING_SELF"
	SortNumericalScaleAverage        SortBy = "NUMERICAL_SCALE_AVERAGE"
	SortNumericalScaleMax            SortBy = "NUMERICAL_SCALE_MAX"
	SortNumericalScaleMin            SortBy = "NUMERICAL_SCALE_MIN"
	SortContributionValue            SortBy = "CONTRIBUTION_VALUE"
	SortSessionStartDate             SortBy = "SESSION_START_DATE"
	SortSessionEndDate               SortBy = "SESSION_END_DATE"
	SortSessionCreationDate          SortBy = "SESSION_CREATION_DATE"
	SortSessionDeletionDate          SortBy = "SESSION_DELETION_DATE"
	SortCourseCreationDate           SortBy = "COURSE_CREATION_DATE"
	SortCourseDeletionDate           SortBy = "COURSE_DELETION_DATE"
	SortResponseSubmittedDate        SortBy = "RESPONSE_SUBMITTED_DATE"
	SortInstructorPermissionRole     SortBy = "INSTRUCTOR_PERMISSION_ROLE"
)

// Kind names a comparison strategy.
type Kind int

const (
	KindNone Kind = iota
	KindLexicographic
	KindNatural
	KindNumeric
	KindChronological
	KindRole
)

func (k Kind) String() string {
	switch k {
	case KindLexicographic:
		return "lexicographic"
	case KindNatural:
		return "natural"
	case KindNumeric:
		return "numeric"
	case KindChronological:
		return "chronological"
	case KindRole:
		return "role"
	default:
		return "none"
	}
}

var strategies = map[Kind]Strategy{
	KindNone:          compareNothing,
	KindLexicographic: CompareLexicographically,
	KindNatural:       CompareNaturally,
	KindNumeric:       CompareNumbers,
	KindChronological: CompareChronologically,
	KindRole:          CompareRoles,
}

// bindings is the only place a column learns how it sorts. A column missing
// from here is a wiring mistake and Compare reports it.
var bindings = map[SortBy]Kind{
	SortNone: KindNone,

	SortSectionName:                 KindNatural,
	SortTeamName:                    KindNatural,
	SortSessionName:                 KindNatural,
	SortQuestionType:                KindNatural,
	SortQuestionText:                KindNatural,
	SortGiverTeam:                   KindNatural,
	SortGiverName:                   KindNatural,
	SortRecipientTeam:               KindNatural,
	SortRecipientName:               KindNatural,
	SortRankRecipientsTeam:          KindNatural,
	SortRankRecipientsRecipient:     KindNatural,
	SortMCQChoice:                   KindNatural,
	SortRubricChoice:                KindNatural,
	SortConstSumOptionsOption:       KindNatural,
	SortConstSumRecipientsTeam:      KindNatural,
	SortConstSumRecipientsRecipient: KindNatural,

	SortRespondentName:  KindLexicographic,
	SortRespondentEmail: KindLexicographic,
	SortStudentName:     KindLexicographic,
	SortStudentEmail:    KindLexicographic,
	SortInstructorName:  KindLexicographic,
	SortInstructorEmail: KindLexicographic,
	SortCourseID:        KindLexicographic,
	SortCourseName:      KindLexicographic,
	SortInstitution:     KindLexicographic,
	SortJoinStatus:      KindLexicographic,
	SortSessionStatus:   KindLexicographic,

	SortMCQWeight:                    KindNumeric,
	SortMCQResponseCount:             KindNumeric,
	SortMCQPercentage:                KindNumeric,
	SortMCQWeightedPercentage:        KindNumeric,
	SortRubricWeightAverage:          KindNumeric,
	SortRubricTotalChosenWeight:      KindNumeric,
	SortConstSumOptionsPoints:        KindNumeric,
	SortConstSumRecipientsPoints:     KindNumeric,
	SortRankRecipientsSelfRank:       KindNumeric,
	SortRankRecipientsOverallRank:    KindNumeric,
	SortRankRecipientsOverallRankExc: KindNumeric,
	SortNumericalScaleAverage:        KindNumeric,
	SortNumericalScaleMax:            KindNumeric,
	SortNumericalScaleMin:            KindNumeric,
	SortContributionValue:            KindNumeric,

	SortSessionStartDate:      KindChronological,
	SortSessionEndDate:        KindChronological,
	SortSessionCreationDate:   KindChronological,
	SortSessionDeletionDate:   KindChronological,
	SortCourseCreationDate:    KindChronological,
	SortCourseDeletionDate:    KindChronological,
	SortResponseSubmittedDate: KindChronological,

	SortInstructorPermissionRole: KindRole,
}

// Compare orders a and b the way column sorts. It is the single entry point
// used by table renderers. An unbound column is an error, never a default.
func Compare(column SortBy, order SortOrder, a, b string) (int, error) {
	strategy, err := StrategyFor(column)
	if err != nil {
		return 0, err
	}
	return strategy(a, b, order), nil
}

// StrategyFor resolves column once so a sort loop can skip the lookup.
func StrategyFor(column SortBy) (Strategy, error) {
	kind, ok := bindings[column]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, string(column))
	}
	return strategies[kind], nil
}

// KindOf reports the strategy bound to column and whether there is one.
func KindOf(column SortBy) (Kind, bool) {
	kind, ok := bindings[column]
	return kind, ok
}

// Columns returns every bound SortBy in name order.
func Columns() []SortBy {
	columns := make([]SortBy, 0, len(bindings))
	for c := range bindings {
		columns = append(columns, c)
	}
	sort.Slice(columns, func(i, j int) bool { return columns[i] < columns[j] })
	return columns
}

// ParseSortBy normalizes s (case, dashes, spaces) and checks it is bound.
func ParseSortBy(s string) (SortBy, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)

	column := SortBy(key)
	if _, ok := bindings[column]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownColumn, s)
	}
	return column, nil
}
