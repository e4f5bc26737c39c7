// Package content holds the static copy and media of both funnel pages.
//
// The catalog ships embedded in the binary as YAML and may be replaced at
// startup by a file on disk. It is read-only after loading and shared by
// every request.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/transicaocapilar/website/internal/disclosure"
	"github.com/transicaocapilar/website/internal/marquee"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

type Catalog struct {
	Site     Site     `yaml:"site"`
	Landing  Landing  `yaml:"landing"`
	Delivery Delivery `yaml:"delivery"`
}

type Site struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	OGImage     string `yaml:"og_image"`
}

type Landing struct {
	Hero         Hero         `yaml:"hero"`
	PainPoints   PainPoints   `yaml:"pain_points"`
	Problem      Problem      `yaml:"problem"`
	Testimonials Testimonials `yaml:"testimonials"`
	Inspiration  Inspiration  `yaml:"inspiration"`
	Authority    Authority    `yaml:"authority"`
	Deliverables Deliverables `yaml:"deliverables"`
	Bonuses      Bonuses      `yaml:"bonuses"`
	Audience     Audience     `yaml:"audience"`
	Pricing      Pricing      `yaml:"pricing"`
	Guarantee    Guarantee    `yaml:"guarantee"`
	FAQ          FAQ          `yaml:"faq"`
	Footer       Footer       `yaml:"footer"`
}

type Hero struct {
	Badge          string `yaml:"badge"`
	Headline       string `yaml:"headline"`
	HeadlineAccent string `yaml:"headline_accent"`
	Subheadline    string `yaml:"subheadline"`
	CTALabel       string `yaml:"cta_label"`
	MockupImage    string `yaml:"mockup_image"`
	MockupAlt      string `yaml:"mockup_alt"`
	SocialProof    string `yaml:"social_proof"`
}

type PainPoints struct {
	Title         string    `yaml:"title"`
	Symptoms      []string  `yaml:"symptoms"`
	Attempts      []Attempt `yaml:"attempts"`
	Callout       string    `yaml:"callout"`
	Quotes        []string  `yaml:"quotes"`
	InnerLead     string    `yaml:"inner_lead"`
	InnerQuestion string    `yaml:"inner_question"`
}

type Attempt struct {
	Text    string `yaml:"text"`
	Outcome string `yaml:"outcome"`
}

type Problem struct {
	Image    string     `yaml:"image"`
	ImageAlt string     `yaml:"image_alt"`
	Title    string     `yaml:"title"`
	Lead     string     `yaml:"lead"`
	Emphasis string     `yaml:"emphasis"`
	Doubts   []string   `yaml:"doubts"`
	Alone    Comparison `yaml:"alone"`
	Method   Comparison `yaml:"method"`
}

// Comparison is one side of the "alone vs. with the method" panel.
type Comparison struct {
	Label      string `yaml:"label"`
	Text       string `yaml:"text"`
	Result     string `yaml:"result"`
	ResultNote string `yaml:"result_note"`
}

type Testimonials struct {
	Title   string  `yaml:"title"`
	Author  string  `yaml:"author"`
	Quotes  []Quote `yaml:"quotes"`
	Gallery Gallery `yaml:"gallery"`
}

type Quote struct {
	Text   string `yaml:"text"`
	Avatar string `yaml:"avatar"`
}

type Inspiration struct {
	Title    string  `yaml:"title"`
	Subtitle string  `yaml:"subtitle"`
	Gallery  Gallery `yaml:"gallery"`
}

// Gallery configures one looping marquee.
type Gallery struct {
	ID        string                `yaml:"id"`
	Direction marquee.Direction     `yaml:"direction"`
	Cycle     time.Duration         `yaml:"cycle"`
	Aspect    string                `yaml:"aspect"`
	Fit       string                `yaml:"fit"`
	Alt       string                `yaml:"alt"`
	Fade      string                `yaml:"fade"`
	Items     []marquee.ContentItem `yaml:"items"`
}

// Marquee builds a fresh marquee for one render.
func (g Gallery) Marquee() (*marquee.Marquee, error) {
	m, err := marquee.New(g.Items, g.Direction, g.Cycle)
	if err != nil {
		return nil, fmt.Errorf("gallery %q: %w", g.ID, err)
	}
	return m, nil
}

type Authority struct {
	Label      string   `yaml:"label"`
	Title      string   `yaml:"title"`
	Photo      string   `yaml:"photo"`
	PhotoAlt   string   `yaml:"photo_alt"`
	Paragraphs []string `yaml:"paragraphs"`
}

type Deliverables struct {
	Title    string        `yaml:"title"`
	Subtitle string        `yaml:"subtitle"`
	Main     MainGuide     `yaml:"main"`
	Items    []Deliverable `yaml:"items"`
}

type MainGuide struct {
	Icon   string   `yaml:"icon"`
	Color  string   `yaml:"color"`
	Title  string   `yaml:"title"`
	Topics []string `yaml:"topics"`
}

type Deliverable struct {
	Icon        string `yaml:"icon"`
	Color       string `yaml:"color"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Bonuses struct {
	Badge       string  `yaml:"badge"`
	Title       string  `yaml:"title"`
	TitleAccent string  `yaml:"title_accent"`
	Subtitle    string  `yaml:"subtitle"`
	Items       []Bonus `yaml:"items"`
}

type Bonus struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	Value       string `yaml:"value"`
}

type Audience struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

type Pricing struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Plans    []Plan `yaml:"plans"`
}

type Plan struct {
	Name            string   `yaml:"name"`
	Emoji           string   `yaml:"emoji"`
	Highlight       bool     `yaml:"highlight"`
	Badge           string   `yaml:"badge"`
	OriginalPrice   string   `yaml:"original_price"`
	Price           string   `yaml:"price"`
	PriceNote       string   `yaml:"price_note"`
	Savings         string   `yaml:"savings"`
	HeadlineFeature string   `yaml:"headline_feature"`
	Features        []string `yaml:"features"`
	Note            string   `yaml:"note"`
	CTALabel        string   `yaml:"cta_label"`
	CheckoutURL     string   `yaml:"checkout_url"`
}

type Guarantee struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type FAQ struct {
	Title   string               `yaml:"title"`
	Entries []disclosure.QAEntry `yaml:"entries"`
}

type Footer struct {
	Copyright  string `yaml:"copyright"`
	Disclaimer string `yaml:"disclaimer"`
}

type Delivery struct {
	Badge    string           `yaml:"badge"`
	Title    string           `yaml:"title"`
	Subtitle string           `yaml:"subtitle"`
	CTALabel string           `yaml:"cta_label"`
	Modules  []DeliveryModule `yaml:"modules"`
	Support  Support          `yaml:"support"`
	Footer   Footer           `yaml:"footer"`
}

// DeliveryModule is one purchased content module unlocked on the delivery page.
type DeliveryModule struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Color       string `yaml:"color"`
	Link        string `yaml:"link"`
}

type Support struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(embeddedCatalog)
}

// Load reads the catalog at path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog strictly and validates it.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
