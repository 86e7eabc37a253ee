package main

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"gymspot/internal/domain/venues"
	"gymspot/internal/search"
)

const maxSuggestions = 8

//go:embed templates
var templateFS embed.FS

var searchPageTmpl = template.Must(template.ParseFS(templateFS, "templates/search.html"))

// searchHandler godoc
//
//	@Summary		Search gyms and clubs
//	@Description	Searches active gyms and clubs by name, address or city. Gyms are listed before clubs on each page.
//	@Tags			search
//	@Produce		json
//	@Param			q		query		string	false	"Free text matched against name, address and city"
//	@Param			city	query		string	false	"City filter"
//	@Param			type	query		string	false	"all, gym or club"	Enums(all, gym, club)
//	@Param			page	query		int		false	"Page number, 12 results per page"
//	@Success		200		{object}	search.Result
//	@Failure		500		{object}	search.Result	"Lookup failed, error is set"
//	@Router			/search [get]
func (app *application) searchHandler(w http.ResponseWriter, r *http.Request) {
	filter := search.Normalize(r.URL.Query())
	result := app.search.Search(r.Context(), filter)

	status := http.StatusOK
	if result.Failed() {
		status = http.StatusInternalServerError
	}

	if err := writeJSON(w, status, result); err != nil {
		app.logger.Errorw("failed to write search response", "error", err)
	}
}

// searchSuggestionsHandler godoc
//
//	@Summary		Autocomplete venue names
//	@Description	Returns up to 8 active venues whose name or city starts with q.
//	@Tags			search
//	@Produce		json
//	@Param			q	query		string	true	"Prefix"
//	@Success		200	{array}		venues.Suggestion
//	@Failure		500	{object}	ErrorInternalServerResponse
//	@Router			/search/suggestions [get]
func (app *application) searchSuggestionsHandler(w http.ResponseWriter, r *http.Request) {
	prefix := strings.TrimSpace(r.URL.Query().Get("q"))
	if prefix == "" {
		app.jsonResponse(w, http.StatusOK, []venues.Suggestion{})
		return
	}

	suggestions, err := app.store.Venues.Suggest(r.Context(), prefix, maxSuggestions)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if suggestions == nil {
		suggestions = []venues.Suggestion{}
	}

	app.jsonResponse(w, http.StatusOK, suggestions)
}

type pageLink struct {
	Label  string
	URL    string
	Active bool
}

type searchPageData struct {
	Filter       search.Filter
	Result       search.Result
	ErrorMessage string
	Tabs         []pageLink
	Pages        []pageLink
	PrevURL      string
	NextURL      string
	RetryURL     string
}

func searchURL(f search.Filter, page int) string {
	q := f.Query(page).Encode()
	if q == "" {
		return "/search"
	}
	return "/search?" + q
}

func newSearchPageData(f search.Filter, res search.Result) searchPageData {
	data := searchPageData{
		Filter:   f,
		Result:   res,
		RetryURL: searchURL(f, res.CurrentPage),
	}
	if res.Error != nil {
		data.ErrorMessage = *res.Error
	}

	// switching tabs starts again from page 1
	for _, tab := range []struct {
		label string
		sel   search.Selector
	}{
		{"All", search.SelectAll},
		{"Gyms", search.SelectGym},
		{"Clubs", search.SelectClub},
	} {
		tf := f
		tf.Type = tab.sel
		data.Tabs = append(data.Tabs, pageLink{
			Label:  tab.label,
			URL:    searchURL(tf, 1),
			Active: f.Type == tab.sel,
		})
	}

	if res.TotalPages <= 1 {
		return data
	}

	for p := 1; p <= res.TotalPages; p++ {
		data.Pages = append(data.Pages, pageLink{
			Label:  strconv.Itoa(p),
			URL:    searchURL(f, p),
			Active: p == res.CurrentPage,
		})
	}
	if res.CurrentPage > 1 {
		data.PrevURL = searchURL(f, min(res.CurrentPage-1, res.TotalPages))
	}
	if res.CurrentPage < res.TotalPages {
		data.NextURL = searchURL(f, res.CurrentPage+1)
	}

	return data
}

// searchPageHandler renders the search page server side. The result set is
// also embedded as JSON for client scripts.
func (app *application) searchPageHandler(w http.ResponseWriter, r *http.Request) {
	filter := search.Normalize(r.URL.Query())
	result := app.search.Search(r.Context(), filter)

	status := http.StatusOK
	if result.Failed() {
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := searchPageTmpl.Execute(w, newSearchPageData(filter, result)); err != nil {
		app.logger.Errorw("failed to render search page", "error", err)
	}
}
