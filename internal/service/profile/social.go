package profile

import "regexp"

// socialLinkPatterns is the fixed catalog of known social-media link shapes
// scanned for in bio/description text. This is pattern matching, not full URL
// validation: a match is taken as-is.
var socialLinkPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)https?://(?:www\.)?(?:twitter\.com|x\.com)/\w+`),
	regexp.MustCompile(`(?i)https?://(?:www\.)?instagram\.com/\w+`),
	regexp.MustCompile(`(?i)https?://(?:www\.)?facebook\.com/\w+`),
	regexp.MustCompile(`(?i)https?://(?:www\.)?linkedin\.com/in/[\w-]+`),
	regexp.MustCompile(`(?i)https?://(?:www\.)?youtube\.com/(?:channel/|user/|c/)?[\w-]+`),
	regexp.MustCompile(`(?i)https?://(?:www\.)?twitch\.tv/\w+`),
	regexp.MustCompile(`(?i)https?://(?:www\.)?github\.com/\w+`),
	regexp.MustCompile(`(?i)https?://(?:www\.)?discord\.gg/\w+`),
	regexp.MustCompile(`(?i)https?://(?:www\.)?tiktok\.com/@\w+`),
	regexp.MustCompile(`(?i)https?://(?:www\.)?snapchat\.com/add/\w+`),
	regexp.MustCompile(`(?i)https?://(?:t\.me|telegram\.me)/\w+`),
	regexp.MustCompile(`(?i)https?://(?:www\.)?medium\.com/@\w+`),
	regexp.MustCompile(`(?i)https?://(?:www\.)?dev\.to/\w+`),
	regexp.MustCompile(`(?i)https?://(?:www\.)?stackoverflow\.com/users/\d+/[\w-]+`),
}

// ExtractSocialLinks scans free text for known social-media links and returns
// them deduplicated in first-seen order.
func ExtractSocialLinks(text string) []string {
	seen := make(map[string]struct{})
	var links []string

	for _, re := range socialLinkPatterns {
		for _, match := range re.FindAllString(text, -1) {
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			links = append(links, match)
		}
	}

	return links
}
