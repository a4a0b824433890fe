package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"piano-fingering/display"
	"piano-fingering/fingering"
	"piano-fingering/pipeline"
	"piano-fingering/score"

	tea "github.com/charmbracelet/bubbletea"
)

// Global difficulty override (set via --difficulty flag).
var difficultyFlag string

func main() {
	args := parseArgs(os.Args[1:])

	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]

	switch command {
	case "analyze":
		if len(args) < 2 {
			fmt.Println("Error: analyze requires a score file")
			printUsage()
			os.Exit(1)
		}
		analyzeScore(args[1])
	case "analyze-midi":
		if len(args) < 2 {
			fmt.Println("Error: analyze-midi requires a MIDI file")
			printUsage()
			os.Exit(1)
		}
		analyzeMIDI(args[1])
	case "export":
		if len(args) < 2 {
			fmt.Println("Error: export requires a score file")
			printUsage()
			os.Exit(1)
		}
		outputPath := ""
		if len(args) >= 3 {
			outputPath = args[2]
		}
		exportScore(args[1], outputPath)
	case "export-midi":
		if len(args) < 2 {
			fmt.Println("Error: export-midi requires a score file")
			printUsage()
			os.Exit(1)
		}
		outputPath := ""
		if len(args) >= 3 {
			outputPath = args[2]
		}
		exportMIDI(args[1], outputPath)
	case "browse":
		if len(args) < 2 {
			fmt.Println("Error: browse requires a score file")
			printUsage()
			os.Exit(1)
		}
		browseScore(args[1])
	case "demo":
		runDemo()
	default:
		printUsage()
		os.Exit(1)
	}
}

// parseArgs extracts flags and returns remaining args
func parseArgs(args []string) []string {
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--difficulty" || arg == "-d" {
			if i+1 < len(args) {
				difficultyFlag = args[i+1]
				i++ // Skip next arg
			} else {
				fmt.Println("Error: --difficulty requires a value")
				os.Exit(1)
			}
		} else if strings.HasPrefix(arg, "--difficulty=") {
			difficultyFlag = strings.TrimPrefix(arg, "--difficulty=")
		} else if strings.HasPrefix(arg, "-d=") {
			difficultyFlag = strings.TrimPrefix(arg, "-d=")
		} else if arg == "--help" || arg == "-h" {
			printUsage()
			os.Exit(0)
		} else {
			remaining = append(remaining, arg)
		}
	}

	if difficultyFlag == "" {
		difficultyFlag = os.Getenv("FINGERING_DIFFICULTY")
	}

	return remaining
}

func loadAndAnalyze(filename string, loader func(string) (*score.Score, error)) (*score.Score, fingering.Difficulty, pipeline.Result) {
	sc, err := loader(filename)
	if err != nil {
		fmt.Printf("Error loading score: %v\n", err)
		os.Exit(1)
	}

	difficulty := sc.ResolveDifficulty(difficultyFlag)
	notes := sc.NoteList()
	result := pipeline.Analyze(notes, difficulty)
	return sc, difficulty, result
}

func analyzeScore(filename string) {
	sc, difficulty, result := loadAndAnalyze(filename, score.Load)
	display.ShowAnalysis(sc.Title, sc.NoteList(), difficulty.String(), result)
}

func analyzeMIDI(filename string) {
	sc, difficulty, result := loadAndAnalyze(filename, score.LoadMIDI)
	display.ShowAnalysis(sc.Title, sc.NoteList(), difficulty.String(), result)
}

func exportScore(filename, outputPath string) {
	sc, _, result := loadAndAnalyze(filename, score.Load)

	if outputPath == "" {
		base := filepath.Base(filename)
		ext := filepath.Ext(base)
		outputPath = strings.TrimSuffix(base, ext) + ".fingered.yaml"
	}

	if err := score.Save(outputPath, sc, result); err != nil {
		fmt.Printf("Error exporting score: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Exported to: %s\n", outputPath)
}

func exportMIDI(filename, outputPath string) {
	sc, _, result := loadAndAnalyze(filename, score.Load)

	if outputPath == "" {
		base := filepath.Base(filename)
		ext := filepath.Ext(base)
		outputPath = strings.TrimSuffix(base, ext) + ".fingered.mid"
	}

	if err := score.SaveMIDI(outputPath, sc, result); err != nil {
		fmt.Printf("Error exporting MIDI: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Exported to: %s\n", outputPath)
}

func browseScore(filename string) {
	sc, _, result := loadAndAnalyze(filename, score.Load)

	model := display.NewBrowserModel(sc.Title, sc.NoteList(), result)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running browser: %v\n", err)
		os.Exit(1)
	}
}

// runDemo analyzes a short built-in C-major scale to sanity-check the
// pipeline without a score file on disk.
func runDemo() {
	sc := &score.Score{
		Title:      "Demo: one-octave C major scale",
		Difficulty: "intermediate",
		Notes:      demoNotes(),
	}
	difficulty := sc.ResolveDifficulty(difficultyFlag)
	notes := sc.NoteList()
	result := pipeline.Analyze(notes, difficulty)
	display.ShowAnalysis(sc.Title, notes, difficulty.String(), result)
}

func demoNotes() []score.NoteRecord {
	pitches := []int{60, 62, 64, 65, 67, 69, 71, 72}
	notes := make([]score.NoteRecord, len(pitches))
	for i, p := range pitches {
		notes[i] = score.NoteRecord{Pitch: p, Duration: 0.5, Staff: 1, Measure: 1, Beat: float64(i) * 0.5}
	}
	return notes
}

func printUsage() {
	fmt.Println("Piano Fingering Planner")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  fingering analyze <file.yaml>                Analyze a score and print fingerings")
	fmt.Println("  fingering analyze-midi <file.mid>             Analyze a Standard MIDI File")
	fmt.Println("  fingering export <file.yaml> [out.yaml]       Write an annotated YAML score")
	fmt.Println("  fingering export-midi <file.yaml> [out.mid]   Write a MIDI file with finger lyrics")
	fmt.Println("  fingering browse <file.yaml>                  Page through fingerings interactively")
	fmt.Println("  fingering demo                                Analyze a built-in C major scale")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --difficulty, -d <level>   beginner|intermediate|advanced (overrides score)")
	fmt.Println("  --help, -h                 Show this help")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  FINGERING_DIFFICULTY       Default difficulty level")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  fingering analyze examples/c-major-scale.yaml")
	fmt.Println("  fingering analyze --difficulty=advanced examples/arpeggio.yaml")
	fmt.Println("  fingering export examples/c-major-scale.yaml fingered.yaml")
}
