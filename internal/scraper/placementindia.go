package scraper

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/gocolly/colly/v2"
	"github.com/google/uuid"

	"jobradar/internal/domain/job"
)

// PlacementIndiaAdapter scrapes placementindia.com listing pages. The
// markup is server-rendered, so a colly collector is enough; no browser.
type PlacementIndiaAdapter struct {
	baseURL     string
	allowedHost string
	logger      *log.Logger
}

func NewPlacementIndiaAdapter(logger *log.Logger) *PlacementIndiaAdapter {
	return NewPlacementIndiaAdapterWithBaseURL("https://www.placementindia.com", logger)
}

func NewPlacementIndiaAdapterWithBaseURL(baseURL string, logger *log.Logger) *PlacementIndiaAdapter {
	a := &PlacementIndiaAdapter{baseURL: strings.TrimSpace(baseURL), logger: logger}
	if a.baseURL == "" {
		a.baseURL = "https://www.placementindia.com"
	}
	a.allowedHost = hostFromBaseURL(a.baseURL)
	return a
}

func (a *PlacementIndiaAdapter) Name() string { return "PlacementIndia" }

// Scrape fetches one listing page per requested page. The site's search
// slugs are unstable, so searchTerm/location only shape defaults; the
// generic listing page is used for discovery.
func (a *PlacementIndiaAdapter) Scrape(ctx context.Context, searchTerm, location string, pages int) ([]job.Job, error) {
	pages = clampPages(pages)
	fallbackLocation := pickNonEmpty(location, DefaultLocation)

	var jobs []job.Job
	var pageErrs int
	for page := 1; page <= pages; page++ {
		if ctx.Err() != nil {
			return jobs, &FetchError{URL: a.baseURL, Cause: ctx.Err()}
		}
		pageJobs, err := a.scrapeListingPage(ctx, a.listingURL(page), fallbackLocation)
		if err != nil {
			pageErrs++
			if a.logger != nil {
				a.logger.Printf("[PlacementIndia] page %d skipped | error=%v", page, err)
			}
			continue
		}
		jobs = append(jobs, pageJobs...)
	}

	if pageErrs == pages {
		return jobs, fmt.Errorf("placementindia: all %d pages failed", pages)
	}
	return jobs, nil
}

func (a *PlacementIndiaAdapter) listingURL(page int) string {
	if page > 1 {
		return fmt.Sprintf("%s?page=%d", a.baseURL, page)
	}
	return a.baseURL
}

func (a *PlacementIndiaAdapter) scrapeListingPage(ctx context.Context, listURL, fallbackLocation string) ([]job.Job, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(a.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: 400 * time.Millisecond, RandomDelay: 750 * time.Millisecond})

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", randomUserAgent())
		r.Headers.Set("Accept-Language", "en-US,en;q=0.9")
	})

	var jobs []job.Job
	c.OnHTML("div.sjc-iteam", func(e *colly.HTMLElement) {
		if j, ok := a.parseCard(e, fallbackLocation); ok {
			jobs = append(jobs, j)
		}
	})

	var reqErr error
	c.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(listURL); err != nil {
		return nil, &FetchError{URL: listURL, Cause: err}
	}
	c.Wait()
	if reqErr != nil {
		return nil, &FetchError{URL: listURL, Cause: reqErr}
	}
	return jobs, nil
}

func (a *PlacementIndiaAdapter) parseCard(e *colly.HTMLElement, fallbackLocation string) (job.Job, bool) {
	title := CleanText(e.ChildText("h2.sjci-heading a.job-name"))
	company := CleanText(e.ChildText("h2.sjci-heading p.job-cname"))
	if title == "" || company == "" {
		return job.Job{}, false
	}

	var experience, salary, location string
	e.ForEach("ul.sjci-need li", func(_ int, li *colly.HTMLElement) {
		text := CleanText(li.Text)
		switch {
		case text == "":
		case strings.Contains(strings.ToLower(text), "lac"):
			salary = text
		case strings.Contains(text, "Fresher") || strings.Contains(strings.ToLower(text), "yr"):
			experience = text
		case CleanText(li.ChildText("span")) != "":
			location = CleanText(li.ChildText("span"))
		case !containsDigit(text):
			location = text
		}
	})
	if location == "" {
		location = fallbackLocation
	}
	if location == "" {
		return job.Job{}, false
	}

	var skills []string
	e.ForEach("div.sjci-skils span", func(_ int, span *colly.HTMLElement) {
		if s := CleanText(span.Text); s != "" {
			skills = append(skills, s)
		}
	})
	skills = CapSkills(skills)

	applyLink := strings.TrimSpace(e.Attr("data-url"))
	if applyLink == "" {
		applyLink = strings.TrimSpace(e.ChildAttr("h2.sjci-heading a.job-name", "href"))
	}
	if applyLink == "" {
		applyLink = a.baseURL
	} else if strings.HasPrefix(applyLink, "/") {
		applyLink = absoluteURL(a.baseURL, applyLink)
	}

	descParts := []string{title, company}
	if location != "" {
		descParts = append(descParts, location)
	}
	if experience != "" {
		descParts = append(descParts, "Exp: "+experience)
	}
	if salary != "" {
		descParts = append(descParts, "Salary: "+salary)
	}
	description := truncate(strings.Join(descParts, " | "), 180)

	if len(skills) == 0 {
		skills = ExtractSkills(description)
	}

	return job.Job{
		JobID:              uuid.NewString(),
		Title:              title,
		Company:            company,
		Location:           location,
		JobType:            "Full-time",
		Salary:             pickNonEmpty(salary, "Not disclosed"),
		ExperienceRequired: pickNonEmpty(experience, "Not specified"),
		Skills:             skills,
		Description:        description,
		PostedDate:         "Recently",
		ApplyLink:          applyLink,
		Source:             a.Name(),
		RemoteFriendly:     IsRemoteFriendly(location, description),
		ScrapedAt:          time.Now().UTC(),
	}, true
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func hostFromBaseURL(base string) string {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil || u.Host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(u.Host); err == nil {
		return h
	}
	return u.Host
}
