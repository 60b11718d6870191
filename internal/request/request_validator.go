package request

import (
	requesterrors "go-hr-portal/internal/request/errors"
)

type detailRule struct {
	fields []string
	err    error
}

// detailRules lists the detail keys each request type must carry. Types
// without an entry are accepted with any details object.
var detailRules = map[string]detailRule{
	TypeLeave: {fields: []string{"startDate", "endDate"}, err: requesterrors.ErrLeaveDatesRequired},
	TypeAsset: {fields: []string{"itemName"}, err: requesterrors.ErrAssetItemRequired},
}

func ValidateDetails(requestType string, details map[string]any) error {
	if details == nil {
		return requesterrors.ErrDetailsRequired
	}

	rule, ok := detailRules[requestType]
	if !ok {
		return nil
	}
	for _, field := range rule.fields {
		if !present(details[field]) {
			return rule.err
		}
	}
	return nil
}

func present(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	default:
		return true
	}
}
