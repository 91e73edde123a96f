package contract

import (
	"strings"
	"testing"
	"time"

	"kitchencare/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestINR_IndianGrouping(t *testing.T) {
	assert.Equal(t, "0", inr(0))
	assert.Equal(t, "999", inr(999))
	assert.Equal(t, "2,999", inr(2999))
	assert.Equal(t, "12,999", inr(12999))
	assert.Equal(t, "1,00,000", inr(100000))
	assert.Equal(t, "12,99,900", inr(1299900))
	assert.Equal(t, "1,23,45,678", inr(12345678))
}

func TestLongDate(t *testing.T) {
	assert.Equal(t, "24 April 2025", longDate(time.Date(2025, time.April, 24, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2 January 2026", longDate(time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)))
}

func sampleContract() *domain.DigitalContract {
	return &domain.DigitalContract{
		ID:              1,
		UserID:          7,
		PlanID:          30,
		AgreementNumber: "KC-20250424-1034",
		IssueDate:       time.Date(2025, time.April, 24, 0, 0, 0, 0, time.UTC),
		PlanType:        "3 Year Premium",
		CoveragePeriod: domain.CoveragePeriod{
			Start: time.Date(2025, time.April, 24, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2028, time.April, 24, 0, 0, 0, 0, time.UTC),
		},
		AmountPaid: 7999,
		ClientInfo: domain.ClientInfo{
			Name:          "Asha Nair",
			ContactNumber: "+91-98100-99887",
			Email:         "asha@example.com",
			Address:       "14 Marine Drive, Mumbai",
		},
		KitchenDetails: domain.KitchenInfo{
			KitchenType:      "Modular L-Shape",
			InstallationDate: time.Date(2024, time.November, 2, 0, 0, 0, 0, time.UTC),
			Size:             "120 sq ft",
		},
		CoverageDetails: coverageDetails,
	}
}

func TestRenderHTML_AgreementFields(t *testing.T) {
	html, err := RenderHTML(sampleContract())
	require.NoError(t, err)

	assert.Contains(t, html, "KC-20250424-1034")
	assert.Contains(t, html, "3 Year Premium Protection")
	assert.Contains(t, html, "24 April 2025 to 24 April 2028")
	assert.Contains(t, html, "&#8377;7,999")
	assert.Contains(t, html, "Asha Nair")
	assert.Contains(t, html, "Modular L-Shape")
	assert.Contains(t, html, "2 November 2024")
}

func TestRenderHTML_FourteenTermsClauses(t *testing.T) {
	html, err := RenderHTML(sampleContract())
	require.NoError(t, err)

	terms := html[strings.Index(html, "TERMS AND CONDITIONS"):strings.Index(html, "SIGNATURES")]
	assert.Equal(t, 14, strings.Count(terms, "<li>"))
	assert.Contains(t, terms, "not a government insurance product")
	assert.Contains(t, terms, "cancellation fee of 25% of the remaining value")
}

func TestRenderHTML_CoverageList(t *testing.T) {
	html, err := RenderHTML(sampleContract())
	require.NoError(t, err)

	for _, item := range coverageDetails {
		assert.Contains(t, html, "<li>"+item+"</li>")
	}
}

func TestRenderHTML_UnsignedShowsPlaceholders(t *testing.T) {
	html, err := RenderHTML(sampleContract())
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(html, "Date: ________________"))
}

func TestRenderHTML_SignedShowsDates(t *testing.T) {
	ct := sampleContract()
	signed := time.Date(2025, time.April, 25, 0, 0, 0, 0, time.UTC)
	ct.TermsAccepted = true
	ct.ClientSignatureDate = &signed
	ct.CompanySignatureDate = &signed

	html, err := RenderHTML(ct)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(html, "Date: 25 April 2025"))
	assert.NotContains(t, html, "________________")
}

func TestRenderHTML_NoKitchenImageOmitsTag(t *testing.T) {
	html, err := RenderHTML(sampleContract())
	require.NoError(t, err)
	assert.NotContains(t, html, "kitchen-image\"")

	ct := sampleContract()
	ct.KitchenDetails.ImageURL = "/static/uploads/kitchens/7/0_kitchen.jpg"
	html, err = RenderHTML(ct)
	require.NoError(t, err)
	assert.Contains(t, html, `class="kitchen-image"`)
}

func TestRenderHTML_Deterministic(t *testing.T) {
	a, err := RenderHTML(sampleContract())
	require.NoError(t, err)
	b, err := RenderHTML(sampleContract())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
