package validation

import (
	"testing"

	"lingua-progress/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestValidator_ValidateUpdateIsCorrect(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name       string
		rawID      string
		rawType    string
		wantID     int64
		wantType   domain.ContentType
		wantFields []string
	}{
		{name: "valid article", rawID: "7", rawType: "1", wantID: 7, wantType: domain.ContentArticle},
		{name: "missing type", rawID: "7", rawType: "", wantID: 7, wantType: domain.ContentNone},
		{name: "out of range type passes", rawID: "7", rawType: "5", wantID: 7, wantType: domain.ContentType(5)},
		{name: "non numeric id", rawID: "abc", rawType: "1", wantType: domain.ContentArticle, wantFields: []string{"id"}},
		{name: "both invalid", rawID: "x", rawType: "y", wantFields: []string{"id", "type"}},
		{name: "blank id", rawID: " ", rawType: "2", wantType: domain.ContentVideo, wantFields: []string{"id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ct, errs := v.ValidateUpdateIsCorrect(tt.rawID, tt.rawType)

			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
			if len(tt.wantFields) == 0 {
				assert.Equal(t, tt.wantID, id)
			}
			assert.Equal(t, tt.wantType, ct)
		})
	}
}
