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

// ShineAdapter parses the shine.com homepage domain-jobs carousels. The
// class names are build-hashed, so the active-panel selector is tried first
// with a global card fallback. Single-page by design; pages is ignored.
type ShineAdapter struct {
	browser *BrowserFetcher
	baseURL string
	logger  *log.Logger
}

func NewShineAdapter(browser *BrowserFetcher, logger *log.Logger) *ShineAdapter {
	if browser == nil {
		browser = NewBrowserFetcher(0)
	}
	return &ShineAdapter{browser: browser, baseURL: "https://www.shine.com", logger: logger}
}

func (a *ShineAdapter) Name() string { return "Shine" }

func (a *ShineAdapter) Scrape(ctx context.Context, _, location string, _ int) ([]job.Job, error) {
	doc, err := a.browser.Fetch(ctx, BrowserPage{
		URL:          a.baseURL,
		WaitSelector: ".domainjobs_card_container__eJMdE",
	})
	if err != nil {
		return nil, err
	}

	fallbackLocation := pickNonEmpty(location, DefaultLocation)

	cards := doc.Find("div.domainjobs_active_content__ZqqrZ div.jobCard_jobCard__jjUmu")
	if cards.Length() == 0 {
		cards = doc.Find("div.jobCard_jobCard__jjUmu")
	}

	var jobs []job.Job
	cards.Each(func(_ int, card *goquery.Selection) {
		if j, ok := a.parseCard(card, fallbackLocation); ok {
			jobs = append(jobs, j)
		}
	})

	if a.logger != nil {
		a.logger.Printf("[Shine] parsed %d of %d cards", len(jobs), cards.Length())
	}
	return jobs, nil
}

func (a *ShineAdapter) parseCard(card *goquery.Selection, fallbackLocation string) (job.Job, bool) {
	titleAnchor := card.Find("strong.jobCard_pReplaceH2__xWmHg a").First()
	title := CleanText(titleAnchor.Text())
	if title == "" {
		return job.Job{}, false
	}

	company := CleanText(card.Find("div.jobCard_jobCard_cName__mYnow span").First().Text())
	if company == "" {
		return job.Job{}, false
	}

	location := CleanText(card.Find("div.jobCard_locationIcon__zrWt2").First().Text())
	if location == "" {
		location = fallbackLocation
	}
	// Strip "+N more locations" artifacts.
	if before, _, found := strings.Cut(location, "+"); found {
		location = CleanText(before)
	}
	if location == "" {
		return job.Job{}, false
	}

	posted := CleanText(card.Find("div.jobCard_jobCard_features__wJid6 span").First().Text())
	if posted == "" {
		posted = "Recently"
	}

	experience := CleanText(card.Find("div.jobCard_jobIcon__3FB1t").First().Text())
	if experience == "" {
		experience = "Not specified"
	}

	applyLink, _ := card.Find(`meta[itemprop="url"]`).First().Attr("content")
	applyLink = strings.TrimSpace(applyLink)
	if applyLink == "" {
		if href, ok := titleAnchor.Attr("href"); ok {
			applyLink = absoluteURL(a.baseURL, href)
		}
	}
	if applyLink == "" {
		applyLink = a.baseURL
	}

	description := truncate(fmt.Sprintf("%s at %s in %s. Experience: %s.", title, company, location, experience), 250)

	return job.Job{
		JobID:              uuid.NewString(),
		Title:              title,
		Company:            company,
		Location:           location,
		JobType:            "Full-time",
		Salary:             "Not disclosed",
		ExperienceRequired: experience,
		Skills:             ExtractSkills(description),
		Description:        description,
		PostedDate:         posted,
		ApplyLink:          applyLink,
		Source:             a.Name(),
		RemoteFriendly:     IsRemoteFriendly(location, description),
		ScrapedAt:          time.Now().UTC(),
	}, true
}
