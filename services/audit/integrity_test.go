package audit

import (
	"context"
	"testing"
	"time"

	"innsight/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawDoc(id string) models.RawBooking {
	checkIn := time.Now().AddDate(0, 1, 0)
	return models.RawBooking{
		"id":         id,
		"propertyId": "prop-1",
		"dateFrom":   checkIn,
		"dateTo":     checkIn.AddDate(0, 0, 2),
		"status":     models.BookingStatusConfirmed,
	}
}

func TestRequiredFieldsCompleteDocumentIsClean(t *testing.T) {
	svc := newTestService(newFakeStore())

	issues, err := svc.checkRequiredFields(context.Background(), &snapshot{raw: []models.RawBooking{rawDoc("b1")}})
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestRequiredFieldMissingIsCritical(t *testing.T) {
	doc := rawDoc("b1")
	delete(doc, "status")
	svc := newTestService(newFakeStore())

	issues, err := svc.checkRequiredFields(context.Background(), &snapshot{raw: []models.RawBooking{doc}})
	require.NoError(t, err)
	require.Len(t, issues, 1, "a single absent field yields exactly one finding")

	issue := issues[0]
	assert.Equal(t, models.SeverityCritical, issue.Severity)
	assert.Equal(t, models.CategoryDataIntegrity, issue.Category)
	assert.Contains(t, issue.Description, `"status"`)
	assert.Contains(t, issue.Description, "missing")
	assert.Equal(t, "b1", issue.BookingID)
}

func TestRequiredFieldNullIsDistinctFromMissing(t *testing.T) {
	doc := rawDoc("b1")
	doc["dateTo"] = nil
	svc := newTestService(newFakeStore())

	issues, err := svc.checkRequiredFields(context.Background(), &snapshot{raw: []models.RawBooking{doc}})
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, models.SeverityCritical, issues[0].Severity)
	assert.Contains(t, issues[0].Description, "null")
	assert.NotContains(t, issues[0].Description, "missing")
}

func TestRequiredFieldsReportEachDefect(t *testing.T) {
	doc := rawDoc("b1")
	delete(doc, "propertyId")
	doc["status"] = nil
	svc := newTestService(newFakeStore())

	issues, err := svc.checkRequiredFields(context.Background(), &snapshot{raw: []models.RawBooking{doc}})
	require.NoError(t, err)
	assert.Len(t, issues, 2)
}
