package extract_test

import (
	"testing"

	"github.com/fwojciec/tenders"
	"github.com/fwojciec/tenders/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetail(t *testing.T) {
	t.Parallel()

	t.Run("extracts contracting authority with missing address", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, detailPage(
			section("Contracting Authority",
				row("Name", "Acme Corp"),
				row("Email", "x@acme.test"),
			),
			brief("Brief Description", "Resurfacing."),
		))

		detail, err := extract.Detail(doc)

		require.NoError(t, err)
		require.NotNil(t, detail)
		assert.Equal(t, tenders.ContractingAuthority{
			Name:    "Acme Corp",
			Address: "",
			Email:   "x@acme.test",
		}, detail.ContractingAuthority)
		assert.Equal(t, "Resurfacing.", detail.BriefDescription)
		assert.Equal(t, tenders.Awarded{}, detail.Awarded)
		assert.Equal(t, tenders.Action{}, detail.Action)
	})

	t.Run("extracts all sections", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, detailPage(
			section("Awarded",
				row("Number", "A-17"),
				row("Name", "Resurfacing"),
				row("Place of Execution", "Berlin"),
				row("Execution Timeframe", "2024"),
				row("Application Period", "Jan"),
				row("Opening Date", "01.02.2024"),
				row("Award period", "Feb"),
				row("Bidders requests", "Yes"),
				row("CPV Codes", "45233142-6"),
			),
			section("Action", row("Number", "B-2"), row("Name", "Road works")),
			section("Place of Execution", row("Anything", "ignored")),
			brief("Brief Description", "Full text."),
		))

		detail, err := extract.Detail(doc)

		require.NoError(t, err)
		require.NotNil(t, detail)
		assert.Equal(t, "A-17", detail.Awarded.Number)
		assert.Equal(t, "Resurfacing", detail.Awarded.Name)
		assert.Equal(t, "Berlin", detail.Awarded.PlaceOfExecution)
		assert.Equal(t, "2024", detail.Awarded.ExecutionTimeframe)
		assert.Equal(t, "Jan", detail.Awarded.ApplicationPeriod)
		assert.Equal(t, "01.02.2024", detail.Awarded.OpeningDate)
		assert.Equal(t, "Feb", detail.Awarded.Period)
		assert.Equal(t, "Yes", detail.Awarded.BiddersRequest)
		assert.Equal(t, "45233142-6", detail.Awarded.CPVCodes)
		assert.Equal(t, tenders.Action{Number: "B-2", Name: "Road works"}, detail.Action)
	})

	t.Run("stores awarded expiration time", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, detailPage(
			section("Awarded",
				row("Number", "A-17"),
				row("Expiration time", "30.04.2023 12:00"),
			),
			brief("Brief Description", "x"),
		))

		detail, err := extract.Detail(doc)

		require.NoError(t, err)
		require.NotNil(t, detail)
		assert.Equal(t, "A-17", detail.Awarded.Number)
		assert.Equal(t, "30.04.2023 12:00", detail.Awarded.ExpirationTime)
	})

	t.Run("ignores place of execution rows in action and authority sections", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, detailPage(
			section("Action",
				row("Number", "B-2"),
				row("Place of Execution", "Berlin"),
			),
			section("Contracting Authority",
				row("Name", "Acme Corp"),
				row("Place of Execution", "Hamburg"),
			),
			brief("Brief Description", "x"),
		))

		detail, err := extract.Detail(doc)

		require.NoError(t, err)
		require.NotNil(t, detail)
		assert.Equal(t, tenders.Action{Number: "B-2"}, detail.Action)
		assert.Equal(t, tenders.ContractingAuthority{Name: "Acme Corp"}, detail.ContractingAuthority)
	})

	t.Run("label takes the first cell and value the last", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, detailPage(
			section("Action", row(" Number ", "ignored", " B-2 ")),
			brief("Brief Description", "x"),
		))

		detail, err := extract.Detail(doc)

		require.NoError(t, err)
		assert.Equal(t, "B-2", detail.Action.Number)
	})

	t.Run("returns nil without details container", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><div class="content">No details</div></body></html>`)

		detail, err := extract.Detail(doc)

		require.NoError(t, err)
		assert.Nil(t, detail)
	})

	t.Run("fails on duplicated details container", func(t *testing.T) {
		t.Parallel()

		page := detailPage(brief("Brief Description", "x"))
		doc := parse(t, page+page)

		_, err := extract.Detail(doc)

		require.Error(t, err)
		assert.Equal(t, tenders.ESTRUCTURE, tenders.ErrorCode(err))
	})

	t.Run("fails on unknown row label in any section", func(t *testing.T) {
		t.Parallel()

		for _, heading := range []string{"Awarded", "Action", "Contracting Authority", "Brief description"} {
			doc := parse(t, detailPage(
				section(heading, row("Frobnicated Status", "x")),
				brief("Brief Description", "x"),
			))

			_, err := extract.Detail(doc)

			require.Error(t, err, heading)
			assert.Equal(t, tenders.EUNKNOWNLABEL, tenders.ErrorCode(err), heading)
			assert.Contains(t, err.Error(), "Frobnicated Status", heading)
		}
	})

	t.Run("fails on unknown section heading", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, detailPage(
			section("Lots", row("Number", "1")),
			brief("Brief Description", "x"),
		))

		_, err := extract.Detail(doc)

		require.Error(t, err)
		assert.Equal(t, tenders.EUNKNOWNLABEL, tenders.ErrorCode(err))
	})

	t.Run("fails on row without cells", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, detailPage(
			`<div class="col-md-6"><fieldset><legend>Action</legend><table><tr><th>Number</th></tr></table></fieldset></div>`,
			brief("Brief Description", "x"),
		))

		_, err := extract.Detail(doc)

		require.Error(t, err)
		assert.Equal(t, tenders.ESTRUCTURE, tenders.ErrorCode(err))
	})

	t.Run("later duplicate row wins", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, detailPage(
			section("Action", row("Number", "first"), row("Number", "second")),
			brief("Brief Description", "x"),
		))

		detail, err := extract.Detail(doc)

		require.NoError(t, err)
		assert.Equal(t, "second", detail.Action.Number)
	})
}

func TestBriefDescription(t *testing.T) {
	t.Parallel()

	t.Run("strips line breaks", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, detailPage(brief("Brief Description", "  First line\nsecond line\\r\\n ")))

		detail, err := extract.Detail(doc)

		require.NoError(t, err)
		assert.Equal(t, "First linesecond line", detail.BriefDescription)
	})

	t.Run("allows empty text", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, detailPage(brief("Brief Description", "")))

		detail, err := extract.Detail(doc)

		require.NoError(t, err)
		assert.Equal(t, "", detail.BriefDescription)
	})

	t.Run("fails when missing", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, detailPage(section("Action", row("Number", "1"))))

		_, err := extract.Detail(doc)

		require.Error(t, err)
		assert.Equal(t, tenders.ESTRUCTURE, tenders.ErrorCode(err))
	})

	t.Run("fails on wrong heading", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, detailPage(brief("Summary", "x")))

		_, err := extract.Detail(doc)

		require.Error(t, err)
		assert.Equal(t, tenders.ESTRUCTURE, tenders.ErrorCode(err))
	})

	t.Run("fails on several cells", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, detailPage(brief("Brief Description", "a", "b")))

		_, err := extract.Detail(doc)

		require.Error(t, err)
		assert.Equal(t, tenders.ESTRUCTURE, tenders.ErrorCode(err))
	})
}
