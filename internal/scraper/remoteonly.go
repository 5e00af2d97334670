package scraper

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"jobradar/internal/domain/job"
)

// RemoteOnlyAdapter scrapes the remoteonly.io listing page. The list is
// lazy-loaded, so the browser transport scrolls until the page stops
// growing. The site has no search, so searchTerm and pages are ignored and
// every record is remote by definition.
type RemoteOnlyAdapter struct {
	browser *BrowserFetcher
	baseURL string
	logger  *log.Logger
}

func NewRemoteOnlyAdapter(browser *BrowserFetcher, logger *log.Logger) *RemoteOnlyAdapter {
	if browser == nil {
		browser = NewBrowserFetcher(0)
	}
	return &RemoteOnlyAdapter{browser: browser, baseURL: "https://remoteonly.io", logger: logger}
}

func (a *RemoteOnlyAdapter) Name() string { return "RemoteOnly" }

func (a *RemoteOnlyAdapter) Scrape(ctx context.Context, _, _ string, _ int) ([]job.Job, error) {
	doc, err := a.browser.Fetch(ctx, BrowserPage{
		URL:        a.baseURL + "/remote-jobs",
		MaxScrolls: 8,
	})
	if err != nil {
		return nil, err
	}

	var jobs []job.Job
	seen := map[string]struct{}{}

	doc.Find(`a[aria-label][href^="/remote-jobs/"]`).Each(func(_ int, anchor *goquery.Selection) {
		href, _ := anchor.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}
		if _, ok := seen[href]; ok {
			return
		}
		seen[href] = struct{}{}

		card := findCardRoot(anchor)
		if j, ok := a.parseCard(card, anchor, href); ok {
			jobs = append(jobs, j)
		}
	})

	if a.logger != nil {
		a.logger.Printf("[RemoteOnly] parsed %d cards from %d anchors", len(jobs), len(seen))
	}
	return jobs, nil
}

// findCardRoot walks up from the anchor to the enclosing card container,
// identified by its utility classes, giving up after a few levels.
func findCardRoot(anchor *goquery.Selection) *goquery.Selection {
	node := anchor
	for i := 0; i < 8; i++ {
		if node.Length() == 0 {
			break
		}
		class, _ := node.Attr("class")
		for _, marker := range []string{"shadow-sm", "rounded-lg", "border", "bg-card"} {
			if strings.Contains(class, marker) {
				return node
			}
		}
		node = node.Parent()
	}
	return anchor.Parent()
}

func (a *RemoteOnlyAdapter) parseCard(card, anchor *goquery.Selection, href string) (job.Job, bool) {
	title := CleanText(card.Find("h3").First().Text())
	if title == "" {
		if aria, ok := anchor.Attr("aria-label"); ok {
			if _, after, found := strings.Cut(aria, ":"); found {
				title = CleanText(after)
			}
		}
	}
	if title == "" {
		return job.Job{}, false
	}

	company := CleanText(card.Find("p").First().Text())
	if company == "" {
		return job.Job{}, false
	}

	posted := CleanText(card.Find("time").First().Text())
	if posted == "" {
		posted = "Recently"
	}

	salary := "Not disclosed"
	jobType := "Full-time"
	location := "Remote"
	var tags []string

	card.Find("div.inline-flex").Each(func(_ int, chip *goquery.Selection) {
		text := CleanText(chip.Text())
		switch {
		case text == "":
		case strings.HasPrefix(text, "💰"):
			salary = pickNonEmpty(strings.TrimPrefix(text, "💰"), salary)
		case strings.HasPrefix(text, "🕐"):
			jobType = pickNonEmpty(strings.TrimPrefix(text, "🕐"), jobType)
		case strings.HasPrefix(text, "🌍"):
			location = pickNonEmpty(strings.TrimPrefix(text, "🌍"), location)
		case len(text) <= 32 && isTagText(text):
			tags = append(tags, text)
		}
	})

	description := fmt.Sprintf("%s at %s. Remote role.", title, company)

	skills := CapSkills(tags)
	if len(skills) == 0 {
		skills = ExtractSkills(title + " " + description)
	}

	return job.Job{
		JobID:              uuid.NewString(),
		Title:              title,
		Company:            company,
		Location:           location,
		JobType:            jobType,
		Salary:             salary,
		ExperienceRequired: "Not specified",
		Skills:             skills,
		Description:        description,
		PostedDate:         posted,
		ApplyLink:          absoluteURL(a.baseURL, href),
		Source:             a.Name(),
		RemoteFriendly:     true,
		ScrapedAt:          time.Now().UTC(),
	}, true
}

func isTagText(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == ' ', r == '.', r == '+', r == '#', r == '-':
		default:
			return false
		}
	}
	return true
}
