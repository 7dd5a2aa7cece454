package appstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Preview pairs a source screenshot with the marketing copy composed onto it.
// CreativeDirection is only consumed by the AI generator.
type Preview struct {
	Input             string `yaml:"input"`
	Output            string `yaml:"output"`
	Title             string `yaml:"title"`
	Subtitle          string `yaml:"subtitle"`
	CreativeDirection string `yaml:"creative_direction,omitempty"`
}

// DefaultPreviews returns the Attain store listing screens in display order.
func DefaultPreviews() []Preview {
	return []Preview{
		{
			Input:    "01.png",
			Output:   "preview_01_home.png",
			Title:    "30 分鐘背 50 個單字",
			Subtitle: "高效學習，輕鬆記住",
			CreativeDirection: `
This is the HERO image - first impression for the App Store.
Theme: Speed & Efficiency
Create an energetic, dynamic composition that conveys "fast learning".
Consider adding subtle motion elements, speed lines, or a sense of momentum.
The feeling should be: "Wow, I can learn this fast!"
Make it bold and eye-catching - this needs to stop people scrolling.
`,
		},
		{
			Input:    "02.png",
			Output:   "preview_02_learn.png",
			Title:    "學習新單字",
			Subtitle: "圖片 + 發音 + 翻譯",
			CreativeDirection: `
Theme: Multi-sensory Learning
This screen shows vocabulary with images, audio, and translations.
Create a warm, inviting composition that feels like discovery and understanding.
Consider visual elements that suggest sight (eye), sound (waves), and knowledge.
The feeling should be: "Learning is enjoyable and intuitive"
Use softer, more contemplative energy compared to the hero image.
`,
		},
		{
			Input:    "03.png",
			Output:   "preview_03_practice.png",
			Title:    "閱讀練習",
			Subtitle: "看單字，選翻譯",
			CreativeDirection: `
Theme: Challenge & Achievement
This is a quiz/practice screen with multiple choice options.
Create a composition that feels like a fun challenge or game.
Consider elements that suggest thinking, choosing, or puzzle-solving.
The feeling should be: "I can test myself and see my progress"
Add energy that suggests mental activity and the satisfaction of getting answers right.
`,
		},
		{
			Input:    "04.png",
			Output:   "preview_04_speaking.png",
			Title:    "口說練習",
			Subtitle: "AI 語音辨識",
			CreativeDirection: `
Theme: Voice & AI Technology
This screen shows speaking practice with AI voice recognition.
Create a futuristic, tech-forward composition that feels cutting-edge.
Consider visual elements like sound waves, voice visualization, or AI patterns.
The feeling should be: "This app uses smart technology to help me speak better"
Make it feel modern and innovative - showcase the AI aspect.
`,
		},
	}
}

// LoadPreviews reads a preview catalog from a YAML file. The file holds a
// top-level previews list; input and output are required on every entry.
func LoadPreviews(path string) ([]Preview, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading previews file: %w", err)
	}
	var file struct {
		Previews []Preview `yaml:"previews"`
	}
	if err := yaml.Unmarshal(bytes, &file); err != nil {
		return nil, fmt.Errorf("unmarshaling previews file: %w", err)
	}
	if len(file.Previews) == 0 {
		return nil, fmt.Errorf("no previews defined in %s", path)
	}
	for i, preview := range file.Previews {
		if preview.Input == "" || preview.Output == "" {
			return nil, fmt.Errorf("preview %d: input and output are required", i)
		}
	}
	return file.Previews, nil
}

// AnyInputExists reports whether at least one catalog screenshot is present
// in dir.
func AnyInputExists(dir string, previews []Preview) bool {
	for _, preview := range previews {
		if _, err := os.Stat(filepath.Join(dir, preview.Input)); err == nil {
			return true
		}
	}
	return false
}

// ExpectedInputs renders one "input: title" line per catalog entry, for the
// error shown when no screenshots are present.
func ExpectedInputs(previews []Preview) string {
	var b strings.Builder
	for _, preview := range previews {
		fmt.Fprintf(&b, "  %s: %s\n", preview.Input, preview.Title)
	}
	return strings.TrimRight(b.String(), "\n")
}
