package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"booking-api/shared/constant"
	"booking-api/shared/dto"
	"booking-api/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	if metadata.CreatedAt == "" {
		t.Error("expected CreatedAt to be set")
	}

	if metadata.ModifiedAt == "" {
		t.Error("expected ModifiedAt to be set")
	}

	parsedCreated, err := time.Parse(constant.DateFormat, metadata.CreatedAt)
	if err != nil {
		t.Fatalf("CreatedAt is not in the expected format: %v", err)
	}

	if !parsedCreated.Equal(createdAt) {
		t.Errorf("expected CreatedAt to represent %v, got %v", createdAt, parsedCreated)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "start_at",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "start_at",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    0,
				Limit:   0,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with negative limit parameter",
			queryParams: map[string]string{
				"limit": "-10",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with lowercase sort direction",
			queryParams: map[string]string{
				"sort_dir": "asc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    0,
				Limit:   0,
				SortBy:  "",
				SortDir: "ASC",
			},
		},
		{
			name: "with invalid sort direction",
			queryParams: map[string]string{
				"sort_dir": "sideways",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    0,
				Limit:   0,
				SortBy:  "",
				SortDir: "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/test")
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest("GET", u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			if *queryParams != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, *queryParams)
			}
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name         string
		filter       dto.Filter
		wantClause   string
		wantArgName  string
		wantArgValue any
	}{
		{
			name: "equality",
			filter: dto.Filter{
				Field:    "email",
				Value:    "ana@example.com",
				Operator: dto.FilterOperatorEq,
			},
			wantClause:   "email = :email",
			wantArgName:  "email",
			wantArgValue: "ana@example.com",
		},
		{
			name: "equality with table prefix",
			filter: dto.Filter{
				Field:    "reminder_sent",
				Value:    false,
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
			wantClause:   "bookings.reminder_sent = :reminder_sent",
			wantArgName:  "reminder_sent",
			wantArgValue: false,
		},
		{
			name: "less or equal with custom arg name",
			filter: dto.Filter{
				ArgName:  "horizon",
				Field:    "start_at",
				Value:    "2025-09-06T14:30:00Z",
				Operator: dto.FilterOperatorLessEq,
			},
			wantClause:   "start_at <= :horizon",
			wantArgName:  "horizon",
			wantArgValue: "2025-09-06T14:30:00Z",
		},
		{
			name: "strictly greater with custom arg name",
			filter: dto.Filter{
				ArgName:  "floor",
				Field:    "start_at",
				Value:    "2025-09-05T14:30:00Z",
				Operator: dto.FilterOperatorGreater,
			},
			wantClause:   "start_at > :floor",
			wantArgName:  "floor",
			wantArgValue: "2025-09-05T14:30:00Z",
		},
		{
			name: "unknown operator yields empty clause",
			filter: dto.Filter{
				Field:    "email",
				Value:    "x",
				Operator: "between",
			},
			wantClause: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			if clause != tt.wantClause {
				t.Errorf("expected clause %q, got %q", tt.wantClause, clause)
			}

			if tt.wantArgName != "" {
				if got, ok := args[tt.wantArgName]; !ok {
					t.Errorf("expected arg %q to be present", tt.wantArgName)
				} else if got != tt.wantArgValue {
					t.Errorf("expected arg %q to be %v, got %v", tt.wantArgName, tt.wantArgValue, got)
				}
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "reminder_sent",
				Value:    false,
				Operator: dto.FilterOperatorEq,
			},
			dto.Filter{
				ArgName:  "horizon",
				Field:    "start_at",
				Value:    "2025-09-06T15:00:00Z",
				Operator: dto.FilterOperatorLessEq,
			},
		},
	}

	clause, args := group.GetWhereClause()

	expected := "(reminder_sent = :reminder_sent AND start_at <= :horizon)"
	if clause != expected {
		t.Errorf("expected clause %q, got %q", expected, clause)
	}

	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	clause, args := group.GetWhereClause()
	if clause != "" {
		t.Errorf("expected empty clause, got %q", clause)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %d", len(args))
	}
}
