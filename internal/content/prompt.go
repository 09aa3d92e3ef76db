package content

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PromptSpec is the finished input for one generation call: prompt text plus
// any inline image references to attach alongside it.
type PromptSpec struct {
	Text   string
	Images []string
}

// BuilderFunc renders a prompt from a validated field bag. Builders are pure:
// the same fields always produce byte-identical output.
type BuilderFunc func(Fields) PromptSpec

// writeLabeled emits "Label: value" on its own line only when the value is
// present and non-empty, so absent optional fields leave no trace in the
// rendered prompt.
func writeLabeled(sb *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(sb, "%s: %s\n", label, strings.TrimSpace(value))
}

func buildStoryPrompt(f Fields) PromptSpec {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Create an engaging story about %s, a skilled %s artisan from %s.\n\n",
		f.Get("artisanName"), f.Get("craftType"), f.Get("region"))
	if f.Has("personalDetails") {
		fmt.Fprintf(sb, "Personal details: %s\n\n", f.Get("personalDetails"))
	}
	fmt.Fprintf(sb, "Include:\n")
	fmt.Fprintf(sb, "- Traditional techniques used in %s\n", f.Get("craftType"))
	fmt.Fprintf(sb, "- Cultural significance of the craft in %s\n", f.Get("region"))
	sb.WriteString("- Personal journey and passion for the craft\n")
	sb.WriteString("- Unique selling points of their work\n")
	sb.WriteString("- Connection to heritage and community\n\n")
	writeLabeled(sb, "Target audience", f.Get("targetAudience"))
	writeLabeled(sb, "Tone", f.Get("tone"))
	sb.WriteString("\nKeep it conversational, authentic, and culturally respectful. ")
	sb.WriteString("The story should be 200-300 words and suitable for sharing on social media or marketplace listings.")
	return PromptSpec{Text: sb.String()}
}

func buildPhotoAnalysisPrompt(f Fields) PromptSpec {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Analyze this product photo for a %s artisan selling %s.\n\n",
		f.Get("craftType"), f.Get("productType"))
	sb.WriteString("Provide specific suggestions for:\n")
	sb.WriteString("1. Composition improvements (rule of thirds, angles, framing)\n")
	sb.WriteString("2. Lighting recommendations (natural vs artificial, shadows, highlights)\n")
	sb.WriteString("3. Background suggestions (clean, culturally appropriate, professional)\n")
	sb.WriteString("4. Styling tips (props, arrangement, color coordination)\n")
	sb.WriteString("5. Technical improvements (focus, clarity, color balance)\n\n")
	sb.WriteString("Focus on making the product appealing to potential buyers while maintaining cultural authenticity. ")
	sb.WriteString("Provide 3-5 actionable suggestions in a friendly, helpful tone.")
	return PromptSpec{Text: sb.String(), Images: []string{f.Get("imageData")}}
}

var photoEnhancePrompts = map[string]string{
	"lighting":    "Analyze the lighting in this product photo and provide specific recommendations to improve brightness, contrast, and shadow balance for better product visibility.",
	"composition": "Evaluate the composition of this product photo and suggest improvements for better visual appeal, including positioning, angles, and framing.",
	"background":  "Assess the background in this product photo and recommend improvements or alternatives that would make the product stand out better.",
	"overall":     "Provide a comprehensive analysis of this product photo with actionable suggestions for overall improvement including lighting, composition, styling, and technical quality.",
}

const photoEnhanceDefaultPrompt = "Analyze this product photo and provide general enhancement suggestions."

func buildPhotoEnhancePrompt(f Fields) PromptSpec {
	text, ok := photoEnhancePrompts[f.Get("enhancementType")]
	if !ok {
		text = photoEnhanceDefaultPrompt
	}
	return PromptSpec{Text: text, Images: []string{f.Get("imageData")}}
}

func buildSocialPrompt(f Fields) PromptSpec {
	switch f.Get("contentType") {
	case "caption":
		return buildSocialCaptionPrompt(f)
	case "story":
		return buildSocialStoryPrompt(f)
	case "hashtags":
		return buildSocialHashtagsPrompt(f)
	case "content-series":
		return buildSocialSeriesPrompt(f)
	default:
		return buildSocialDefaultPrompt(f)
	}
}

func buildSocialCaptionPrompt(f Fields) PromptSpec {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Create an engaging %s caption for a %s artisan from %s showcasing their %s.\n\n",
		f.Get("platform"), f.Get("craftType"), f.Get("region"), f.Get("productName"))
	writeLabeled(sb, "Platform", f.Get("platform"))
	writeLabeled(sb, "Tone", f.Get("tone"))
	writeLabeled(sb, "Target Audience", f.Get("targetAudience"))
	writeLabeled(sb, "Occasion", f.Get("occasion"))
	sb.WriteString("\nRequirements:\n")
	sb.WriteString("- Include relevant hashtags (8-15 for Instagram, 3-5 for Facebook, 2-3 for Twitter)\n")
	sb.WriteString("- Mention cultural significance and craftsmanship\n")
	sb.WriteString("- Include a call-to-action\n")
	sb.WriteString("- Keep within platform character limits\n")
	sb.WriteString("- Make it authentic and engaging\n")
	writeLabeled(sb, "Additional context", f.Get("customPrompt"))
	sb.WriteString("\nFormat the response with the caption text followed by hashtags on separate lines.")
	return PromptSpec{Text: sb.String()}
}

func buildSocialStoryPrompt(f Fields) PromptSpec {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Create a compelling social media story post for a %s artisan from %s.\n\n",
		f.Get("craftType"), f.Get("region"))
	writeLabeled(sb, "Product", f.Get("productName"))
	writeLabeled(sb, "Platform", f.Get("platform"))
	writeLabeled(sb, "Tone", f.Get("tone"))
	sb.WriteString("\nCreate a short, engaging story (1-2 sentences) that would work well as an Instagram/Facebook story with an image. ")
	sb.WriteString("Focus on the craft process, cultural heritage, or artisan's passion.")
	return PromptSpec{Text: sb.String()}
}

func buildSocialHashtagsPrompt(f Fields) PromptSpec {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Generate relevant hashtags for a %s artisan from %s posting about %s on %s.\n\n",
		f.Get("craftType"), f.Get("region"), f.Get("productName"), f.Get("platform"))
	sb.WriteString("Include:\n")
	sb.WriteString("- Craft-specific hashtags\n")
	sb.WriteString("- Regional/cultural hashtags\n")
	sb.WriteString("- Product-specific hashtags\n")
	sb.WriteString("- General artisan/handmade hashtags\n")
	sb.WriteString("- Trending relevant hashtags\n\n")
	sb.WriteString("Provide 15-20 hashtags total, mix of popular and niche tags.")
	return PromptSpec{Text: sb.String()}
}

func buildSocialSeriesPrompt(f Fields) PromptSpec {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Create a 5-post content series for a %s artisan from %s to showcase their %s and craft process.\n\n",
		f.Get("craftType"), f.Get("region"), f.Get("productName"))
	sb.WriteString("Each post should have:\n")
	sb.WriteString("- A compelling caption (2-3 sentences)\n")
	sb.WriteString("- 5-8 relevant hashtags\n")
	sb.WriteString("- A clear theme/focus\n\n")
	sb.WriteString("Series themes:\n")
	sb.WriteString("1. Behind the scenes - craft process\n")
	sb.WriteString("2. Cultural heritage and tradition\n")
	sb.WriteString("3. Product showcase and details\n")
	sb.WriteString("4. Artisan's personal story\n")
	sb.WriteString("5. Customer testimonial/usage\n\n")
	writeLabeled(sb, "Tone", f.Get("tone"))
	writeLabeled(sb, "Platform", f.Get("platform"))
	return PromptSpec{Text: strings.TrimRight(sb.String(), "\n")}
}

func buildSocialDefaultPrompt(f Fields) PromptSpec {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Create engaging %s content for a %s artisan from %s showcasing their %s.\n\n",
		f.Get("platform"), f.Get("craftType"), f.Get("region"), f.Get("productName"))
	writeLabeled(sb, "Tone", f.Get("tone"))
	writeLabeled(sb, "Target Audience", f.Get("targetAudience"))
	sb.WriteString("\nAnalyze what would resonate with the audience and suggest a post that highlights craftsmanship, ")
	sb.WriteString("cultural heritage, and a clear call-to-action.")
	return PromptSpec{Text: sb.String()}
}

func buildCalendarPrompt(f Fields) PromptSpec {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Create a %s social media content calendar for a %s artisan from %s.\n\n",
		f.Get("timeframe"), f.Get("craftType"), f.Get("region"))
	writeLabeled(sb, "Posting frequency", f.Get("postFrequency"))
	writeLabeled(sb, "Special events to include", f.Get("specialEvents"))
	sb.WriteString("\nFor each post, provide:\n")
	sb.WriteString("- Date/timing suggestion\n")
	sb.WriteString("- Content type (product showcase, process video, story, educational, etc.)\n")
	sb.WriteString("- Brief description\n")
	sb.WriteString("- Platform recommendation (Instagram, Facebook, Twitter)\n")
	sb.WriteString("- Suggested hashtags (3-5 key ones)\n\n")
	sb.WriteString("Include variety:\n")
	sb.WriteString("- Product showcases (40%)\n")
	sb.WriteString("- Behind-the-scenes/process (25%)\n")
	sb.WriteString("- Cultural/educational content (20%)\n")
	sb.WriteString("- Personal stories/testimonials (10%)\n")
	sb.WriteString("- Seasonal/festival content (5%)\n\n")
	fmt.Fprintf(sb, "Consider optimal posting times and cultural festivals/seasons relevant to %s.", f.Get("region"))
	return PromptSpec{Text: sb.String()}
}

func buildMarketPrompt(f Fields) PromptSpec {
	switch f.Get("analysisType") {
	case "trends":
		return buildMarketTrendsPrompt(f)
	case "pricing":
		return buildMarketPricingPrompt(f)
	case "opportunities":
		return buildMarketOpportunitiesPrompt(f)
	case "competition":
		return buildMarketCompetitionPrompt(f)
	default:
		return buildMarketDefaultPrompt(f)
	}
}

func buildMarketTrendsPrompt(f Fields) PromptSpec {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Analyze current market trends for %s artisans in %s over the %s timeframe.\n\n",
		f.Get("craftType"), f.Get("region"), f.Get("timeframe"))
	sb.WriteString("Provide insights on:\n")
	sb.WriteString("1. Popular product categories and styles\n")
	sb.WriteString("2. Seasonal demand patterns\n")
	sb.WriteString("3. Emerging design trends\n")
	sb.WriteString("4. Customer preferences and demographics\n")
	sb.WriteString("5. Price range analysis\n")
	sb.WriteString("6. Competition landscape\n")
	sb.WriteString("7. Market opportunities\n\n")
	sb.WriteString("Focus on actionable insights that can help artisans adapt their products and marketing strategies.")
	return PromptSpec{Text: sb.String()}
}

func buildMarketPricingPrompt(f Fields) PromptSpec {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Provide pricing analysis and recommendations for %s products in %s.\n\n",
		f.Get("craftType"), f.Get("region"))
	sb.WriteString("Include:\n")
	sb.WriteString("1. Average price ranges for different product categories\n")
	sb.WriteString("2. Factors affecting pricing (materials, complexity, size)\n")
	sb.WriteString("3. Competitive pricing strategies\n")
	sb.WriteString("4. Premium pricing opportunities\n")
	sb.WriteString("5. Seasonal pricing adjustments\n")
	sb.WriteString("6. Online vs offline pricing differences\n")
	sb.WriteString("7. Pricing recommendations for new artisans\n\n")
	sb.WriteString("Consider local market conditions and customer purchasing power.")
	return PromptSpec{Text: sb.String()}
}

func buildMarketOpportunitiesPrompt(f Fields) PromptSpec {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Identify market opportunities for %s artisans in %s.\n\n",
		f.Get("craftType"), f.Get("region"))
	sb.WriteString("Analyze:\n")
	sb.WriteString("1. Underserved market segments\n")
	sb.WriteString("2. Emerging customer needs\n")
	sb.WriteString("3. Seasonal opportunities\n")
	sb.WriteString("4. Export potential\n")
	sb.WriteString("5. Collaboration opportunities\n")
	sb.WriteString("6. Digital marketing gaps\n")
	sb.WriteString("7. Product innovation areas\n\n")
	sb.WriteString("Provide specific, actionable recommendations for business growth.")
	return PromptSpec{Text: sb.String()}
}

func buildMarketCompetitionPrompt(f Fields) PromptSpec {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Analyze the competitive landscape for %s artisans in %s.\n\n",
		f.Get("craftType"), f.Get("region"))
	sb.WriteString("Cover:\n")
	sb.WriteString("1. Key competitors and their strategies\n")
	sb.WriteString("2. Market positioning opportunities\n")
	sb.WriteString("3. Differentiation strategies\n")
	sb.WriteString("4. Pricing comparison\n")
	sb.WriteString("5. Marketing approach analysis\n")
	sb.WriteString("6. Strengths and weaknesses\n")
	sb.WriteString("7. Competitive advantages to leverage\n\n")
	sb.WriteString("Help artisans understand how to position themselves effectively.")
	return PromptSpec{Text: sb.String()}
}

func buildMarketDefaultPrompt(f Fields) PromptSpec {
	heading := strings.TrimSpace(f.Get("analysisType"))
	if heading == "" {
		heading = "Market"
	}
	heading = cases.Title(language.English).String(heading)
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "%s analysis for %s artisans in %s over the %s timeframe.\n\n",
		heading, f.Get("craftType"), f.Get("region"), f.Get("timeframe"))
	sb.WriteString("Analyze the market from this angle and suggest concrete, actionable steps ")
	sb.WriteString("the artisan can take to grow their business.")
	return PromptSpec{Text: sb.String()}
}

func buildPricingPrompt(f Fields) PromptSpec {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Provide pricing recommendations for a %s product: %s\n\n",
		f.Get("craftType"), f.Get("productName"))
	sb.WriteString("Product Details:\n")
	fmt.Fprintf(sb, "- Materials used: %s\n", f.Get("materials"))
	fmt.Fprintf(sb, "- Time to make: %s\n", f.Get("timeToMake"))
	fmt.Fprintf(sb, "- Skill level required: %s\n", f.Get("skillLevel"))
	fmt.Fprintf(sb, "- Region: %s\n", f.Get("region"))
	fmt.Fprintf(sb, "- Size/dimensions: %s\n", f.Get("productSize"))
	fmt.Fprintf(sb, "- Unique features: %s\n\n", f.Get("uniqueFeatures"))
	sb.WriteString("Calculate and provide:\n")
	sb.WriteString("1. Cost breakdown (materials, labor, overhead)\n")
	sb.WriteString("2. Suggested retail price range\n")
	sb.WriteString("3. Wholesale pricing (if applicable)\n")
	sb.WriteString("4. Online marketplace pricing\n")
	sb.WriteString("5. Premium pricing justification\n")
	sb.WriteString("6. Competitive price comparison\n")
	sb.WriteString("7. Profit margin analysis\n\n")
	sb.WriteString("Consider local market conditions, material costs, and artisan skill premium. ")
	sb.WriteString("Provide both conservative and optimistic pricing scenarios.")
	return PromptSpec{Text: sb.String()}
}
