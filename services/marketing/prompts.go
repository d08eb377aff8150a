// File: services/marketing/prompts.go
package marketing

import (
	"fmt"
	"strings"

	"detailify/models"
)

const captionPrompt = `You are the social media voice of %s, a car detailing studio in %s.
Write one Instagram caption for a finished job.
Vehicle: %s
Package: %s
Add-ons: %s
Notes from the detailer: %s
%s
Tone: %s. Keep it under 60 words, no hashtags in the body, then append 5 relevant hashtags on a final line.
Return only the caption text.`

const pushPrompt = `You are writing a push notification for customers of %s, a car detailing studio in %s.
Offer or occasion: %s
%s
Tone: %s.
Return exactly two lines: line 1 is a title of at most 40 characters, line 2 is a body of at most 120 characters. No emoji in the title.`

const seoPrompt = `You are an SEO assistant for %s, a car detailing studio in %s.
Service to rank for: %s %s
Context: %s
Return a comma-separated list of 12 keyword phrases customers in %s would actually search for. Mix short and long-tail. Return only the list.`

const videoScriptPrompt = `You are scripting a 30-second vertical video for %s, a car detailing studio in %s.
Subject: %s %s
Talking points: %s
%s
Tone: %s.
Return the script as plain lines in the form [0-5s] ... [5-12s] ... and so on, with spoken text and a one-phrase shot description per segment.`

// buildPrompt fills the template for the requested kind. Empty optional
// fields collapse to neutral wording so the model never sees blanks.
func buildPrompt(req models.ContentRequest, businessName, businessCity string) string {
	vehicle := orDefault(req.Vehicle, "a customer vehicle")
	pkg := orDefault(req.Package, "full detail")
	addons := "none"
	if len(req.Addons) > 0 {
		addons = strings.Join(req.Addons, ", ")
	}
	brief := orDefault(req.Brief, "a spotless result")
	tone := orDefault(req.Tone, "friendly and confident")

	weatherLine := ""
	if req.WeatherNote != "" {
		weatherLine = "Current local weather: " + req.WeatherNote + "."
	}

	switch req.Kind {
	case models.ContentKindPush:
		return fmt.Sprintf(pushPrompt, businessName, businessCity, brief, weatherLine, tone)
	case models.ContentKindSEO:
		return fmt.Sprintf(seoPrompt, businessName, businessCity, pkg, vehicle, brief, businessCity)
	case models.ContentKindVideoScript:
		return fmt.Sprintf(videoScriptPrompt, businessName, businessCity, pkg, vehicle, brief, weatherLine, tone)
	default:
		return fmt.Sprintf(captionPrompt, businessName, businessCity, vehicle, pkg, addons, brief, weatherLine, tone)
	}
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
