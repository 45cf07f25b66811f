package extract_test

import (
	"testing"

	"github.com/fwojciec/tenders"
	"github.com/fwojciec/tenders/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	t.Parallel()

	t.Run("extracts entry fields", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, listing(listItem(
			"https://example.com/public/publications/12345/",
			"Road Resurfacing Contract",
			"Notes here. Show further assignments by Acme Corp",
			"March 2023", "15",
		)))

		entries, err := extract.Index(doc, nil)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		e := entries[0]
		assert.Equal(t, 12345, e.ItemID)
		assert.Equal(t, "Road Resurfacing Contract", e.Title)
		assert.Equal(t, "Notes here.", e.Description)
		assert.Equal(t, "15. 03. 2023", e.PublicationDate.String())
	})

	t.Run("missing columns default to empty string", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, listing(listItem(
			"/public/publications/7/", "Bridge", "Text", "January 2024", "2",
			column("Expiration time", "30.01.2024"),
		)))

		entries, err := extract.Index(doc, nil)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		e := entries[0]
		assert.Equal(t, "30.01.2024", e.ExpirationTime)
		assert.Equal(t, "", e.ApplicationPeriod)
		assert.Equal(t, "", e.ApplicationDeadline)
		assert.Equal(t, "", e.ExecutionTimeframe)
		assert.Equal(t, "", e.PlaceOfExecution)
	})

	t.Run("reads every column label", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, listing(listItem(
			"/public/publications/7/", "Bridge", "Text", "January 2024", "2",
			column("Application Period", "01.01.2024 - 15.01.2024"),
			column("Expiration time", "30.01.2024"),
			column("Application deadline", "15.01.2024"),
			column("Execution Timeframe", "Q2 2024"),
			column("Place of Execution", "Berlin\n"),
		)))

		entries, err := extract.Index(doc, nil)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		e := entries[0]
		assert.Equal(t, "01.01.2024 - 15.01.2024", e.ApplicationPeriod)
		assert.Equal(t, "30.01.2024", e.ExpirationTime)
		assert.Equal(t, "15.01.2024", e.ApplicationDeadline)
		assert.Equal(t, "Q2 2024", e.ExecutionTimeframe)
		assert.Equal(t, "Berlin", e.PlaceOfExecution)
	})

	t.Run("keeps listing order", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, listing(
			listItem("/p/3/", "Third", "c", "May 2023", "3"),
			listItem("/p/1/", "First", "a", "May 2023", "1"),
			listItem("/p/2/", "Second", "b", "May 2023", "2"),
		))

		entries, err := extract.Index(doc, nil)

		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, 3, entries[0].ItemID)
		assert.Equal(t, 1, entries[1].ItemID)
		assert.Equal(t, 2, entries[2].ItemID)
	})

	t.Run("skips failing entries and reports their position", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, listing(
			listItem("/p/1/", "Good", "a", "May 2023", "1"),
			listItem("/p/2/", "Bad label", "b", "May 2023", "2", column("Frobnicated Status", "x")),
			listItem("/p/3/", "Bad month", "c", "Maerz 2023", "3"),
			listItem("/p/abc/", "Bad id", "d", "May 2023", "4"),
			listItem("/p/5/", "Good", "e", "May 2023", "5"),
		))

		type skip struct {
			position int
			code     string
		}
		var skipped []skip
		entries, err := extract.Index(doc, func(position int, err error) {
			skipped = append(skipped, skip{position, tenders.ErrorCode(err)})
		})

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, 1, entries[0].ItemID)
		assert.Equal(t, 5, entries[1].ItemID)
		assert.Equal(t, []skip{
			{1, tenders.EUNKNOWNLABEL},
			{2, tenders.EUNKNOWNMONTH},
			{3, tenders.EBADID},
		}, skipped)
	})

	t.Run("fails without listing container", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><ul class="other"><li></li></ul></body></html>`)

		_, err := extract.Index(doc, nil)

		require.Error(t, err)
		assert.Equal(t, tenders.ESTRUCTURE, tenders.ErrorCode(err))
	})

	t.Run("empty listing yields no entries", func(t *testing.T) {
		t.Parallel()

		entries, err := extract.Index(parse(t, listing()), nil)

		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		html := listing(
			listItem("/p/1/", "One", "a", "May 2023", "1", column("Expiration time", "x")),
			listItem("/p/2/", "Two", "b", "June 2023", "2"),
		)

		first, err := extract.Index(parse(t, html), nil)
		require.NoError(t, err)
		second, err := extract.Index(parse(t, html), nil)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestEntry(t *testing.T) {
	t.Parallel()

	t.Run("fails on unknown column label", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, listing(listItem("/p/1/", "T", "d", "May 2023", "1", column("Frobnicated Status", "x"))))
		li, err := doc.FindUnique(tenders.Selector{Tag: "li"})
		require.NoError(t, err)

		_, err = extract.Entry(li)

		require.Error(t, err)
		assert.Equal(t, tenders.EUNKNOWNLABEL, tenders.ErrorCode(err))
		assert.Contains(t, err.Error(), "Frobnicated Status")
	})

	t.Run("fails without item block", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<ul class="stream"><li><div class="other"></div></li></ul>`)
		li, err := doc.FindUnique(tenders.Selector{Tag: "li"})
		require.NoError(t, err)

		_, err = extract.Entry(li)

		require.Error(t, err)
		assert.Equal(t, tenders.ESTRUCTURE, tenders.ErrorCode(err))
	})
}

func TestItemID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		href string
		want int
		code string
	}{
		{name: "trailing slash", href: "https://example.com/public/publications/12345/", want: 12345},
		{name: "no trailing slash", href: "/public/publications/42", want: 42},
		{name: "padded segment", href: "/public/publications/ 9 /", want: 9},
		{name: "not a number", href: "/public/publications/abc/", code: tenders.EBADID},
		{name: "zero", href: "/public/publications/0/", code: tenders.EBADID},
		{name: "negative", href: "/public/publications/-5/", code: tenders.EBADID},
		{name: "empty", href: "", code: tenders.EBADID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := parse(t, `<div class="item-left"><span class="info-actions"><a href="`+tt.href+`">x</a></span></div>`)
			left, err := doc.FindUnique(tenders.Selector{Tag: "div", Class: "item-left"})
			require.NoError(t, err)

			id, err := extract.ItemID(left)

			if tt.code != "" {
				require.Error(t, err)
				assert.Equal(t, tt.code, tenders.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}

	t.Run("missing href", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div class="item-left"><span class="info-actions"><a>x</a></span></div>`)
		left, err := doc.FindUnique(tenders.Selector{Tag: "div", Class: "item-left"})
		require.NoError(t, err)

		_, err = extract.ItemID(left)

		require.Error(t, err)
		assert.Equal(t, tenders.ESTRUCTURE, tenders.ErrorCode(err))
	})
}

func TestDescription(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{name: "cuts boilerplate", html: "Notes here. Show further assignments by Acme Corp", want: "Notes here."},
		{name: "strips raw line breaks", html: "Line one\r\nLine two", want: "Line oneLine two"},
		{name: "strips escaped line breaks", html: `Line one\r\nLine two`, want: "Line oneLine two"},
		{name: "without boilerplate", html: "  Plain text  ", want: "Plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := parse(t, `<div class="item-left"><div class="text-muted">`+tt.html+`</div></div>`)
			left, err := doc.FindUnique(tenders.Selector{Tag: "div", Class: "item-left"})
			require.NoError(t, err)

			got, err := extract.Description(left)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPublicationDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		month string
		day   string
		want  string
		code  string
	}{
		{name: "single digit day", month: "March 2023", day: "5", want: "5. 03. 2023"},
		{name: "zero padded day is kept", month: "March 2023", day: "05", want: "05. 03. 2023"},
		{name: "padded blocks", month: " December  2022 ", day: " 31 ", want: "31. 12. 2022"},
		{name: "unknown month", month: "Maerz 2023", day: "1", code: tenders.EUNKNOWNMONTH},
		{name: "lowercase month", month: "march 2023", day: "1", code: tenders.EUNKNOWNMONTH},
		{name: "empty month", month: " ", day: "1", code: tenders.ESTRUCTURE},
		{name: "bad year", month: "March twenty", day: "1", code: tenders.EINVALID},
		{name: "bad day", month: "March 2023", day: "first", code: tenders.EINVALID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := parse(t, `<div class="item"><div class="item-right"><div class="month">`+tt.month+
				`</div><div class="date">`+tt.day+`</div></div></div>`)
			item, err := doc.FindUnique(tenders.Selector{Tag: "div", Class: "item"})
			require.NoError(t, err)

			got, err := extract.PublicationDate(item)

			if tt.code != "" {
				require.Error(t, err)
				assert.Equal(t, tt.code, tenders.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
