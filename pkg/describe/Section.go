package describe

const SUMMARY = "Summary"

type Section struct {
	Title string `json:"title" yaml:"title"`
	Items []Item `json:"items" yaml:"items"`
}

type Item struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

func NewSection(title string) *Section {
	return &Section{
		Title: title,
		Items: make([]Item, 0),
	}
}

// Item appends a label/value pair and returns the section so calls can be chained.
func (section *Section) Item(label string, value string) *Section {
	section.Items = append(section.Items, Item{
		Label: label,
		Value: value,
	})

	return section
}

func (section *Section) Get(label string) (string, bool) {
	for _, item := range section.Items {
		if item.Label == label {
			return item.Value, true
		}
	}

	return "", false
}

func (section *Section) Empty() bool {
	return len(section.Items) == 0
}

// Find returns the first section with the given title.
func Find(sections []Section, title string) *Section {
	for i := range sections {
		if sections[i].Title == title {
			return &sections[i]
		}
	}

	return nil
}
