package site

// CTA is a call-to-action link rendered as a button.
type CTA struct {
	Label   string
	Href    string
	Primary bool
	Arrow   bool
}

// Image is a decorative picture with alt text.
type Image struct {
	Src string
	Alt string
}

// Intro is a section heading with a lead paragraph.
type Intro struct {
	Heading string
	Lead    string
}

// Feature is a card in a grid.
type Feature struct {
	Icon        string
	Title       string
	Description string
	Href        string
	LinkLabel   string
}

// Hero opens a page.
type Hero struct {
	Heading string
	Accent  string
	Lead    string
	CTAs    []CTA
	Image   *Image
}

// Banner is the closing call-to-action band.
type Banner struct {
	Heading string
	Lead    string
	CTAs    []CTA
}

// Stat is a headline number.
type Stat struct {
	Number string
	Label  string
}

// HomeView is the body of the home page.
type HomeView struct {
	Hero     Hero
	Overview Intro
	Areas    []Feature
	Process  ProcessBlock
	Calm     StoryBlock
	Closing  Banner
}

// ProcessBlock lists the steps the team covers.
type ProcessBlock struct {
	Heading string
	Lead    string
	Steps   []string
	Image   Image
}

// StoryBlock is prose beside an image.
type StoryBlock struct {
	Heading    string
	Paragraphs []string
	CTA        *CTA
	Image      Image
}

// ServiceArea is one anchored section of the services page.
type ServiceArea struct {
	ID          string
	Icon        string
	Title       string
	Description string
	Highlights  []Feature
	CTA         CTA
	Image       Image
	ImageFirst  bool
}

// ServicesView is the body of the services page.
type ServicesView struct {
	Hero      Hero
	Areas     []ServiceArea
	Portfolio Intro
	Offerings []Feature
	Closing   Banner
}

// AboutView is the body of the about page.
type AboutView struct {
	Hero    Hero
	Story   StoryBlock
	Mission MissionBlock
	Values  Intro
	Core    []Feature
	Partner PartnerBlock
	Closing Banner
}

// MissionBlock pairs the mission and vision statements.
type MissionBlock struct {
	Intro   Intro
	Mission string
	Vision  string
}

// PartnerBlock lists reasons to work together.
type PartnerBlock struct {
	Heading string
	Points  []Feature
	Image   Image
}
