package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lkorr/music-theory-website-sub004/internal/answer"
	"github.com/lkorr/music-theory-website-sub004/internal/chord"
	"github.com/lkorr/music-theory-website-sub004/internal/level"
	"github.com/lkorr/music-theory-website-sub004/internal/pitch"
	"github.com/lkorr/music-theory-website-sub004/internal/progression"
	"github.com/lkorr/music-theory-website-sub004/internal/server"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chord-trainer",
	Short: "Ear-training drills for chord naming",
	Long: `Chord trainer generates chord voicings and checks free-text
answers against them, across qualities, inversions and keys.

Run the web interface with "serve" or practice in the terminal
with "drill".`,
	Version: version,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web interface",
	Long: `Start the web practice interface.

Example:
  chord-trainer serve --port 8080
  chord-trainer serve --levels custom-levels.yaml`,
	RunE: runServe,
}

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Practice in the terminal",
	Long: `Run a practice session in the terminal: the trainer prints a
voicing, you type the chord name.

Examples:
  chord-trainer drill --level sevenths --count 10
  chord-trainer drill --progressions --key Am`,
	RunE: runDrill,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List built-in levels",
	RunE:  runLevels,
}

var (
	servePort       int
	serveLevelsFile string

	drillLevel        string
	drillCount        int
	drillProgressions bool
	drillKey          string
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on")
	serveCmd.Flags().StringVar(&serveLevelsFile, "levels", "", "extra level definitions (YAML)")

	drillCmd.Flags().StringVarP(&drillLevel, "level", "l", "triads", "level to practice")
	drillCmd.Flags().IntVarP(&drillCount, "count", "n", 10, "number of problems")
	drillCmd.Flags().BoolVar(&drillProgressions, "progressions", false, "drill 4-chord progressions instead of single chords")
	drillCmd.Flags().StringVarP(&drillKey, "key", "k", "C", "key signature for progression drills")

	rootCmd.AddCommand(serveCmd, drillCmd, levelsCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	srv, err := server.New(server.Config{
		Port:       servePort,
		LevelsFile: serveLevelsFile,
	})
	if err != nil {
		return err
	}
	return srv.Run()
}

func runLevels(cmd *cobra.Command, args []string) error {
	for _, name := range level.Names() {
		lvl, err := level.Get(name)
		if err != nil {
			return err
		}
		labeled := ""
		if lvl.RequireInversionLabeling {
			labeled = ", labeled inversions"
		}
		fmt.Printf("%-22s %s%s\n", name, strings.Join(lvl.Qualities, " "), labeled)
	}
	return nil
}

func runDrill(cmd *cobra.Command, args []string) error {
	if drillProgressions {
		return drillProgressionLoop()
	}
	return drillChordLoop()
}

func drillChordLoop() error {
	lvl, err := level.Get(drillLevel)
	if err != nil {
		return err
	}

	gen := chord.NewGenerator(time.Now().UnixNano())
	scanner := bufio.NewScanner(os.Stdin)

	var prev *chord.Generated
	correct := 0
	for i := 0; i < drillCount; i++ {
		problem, err := gen.Generate(lvl, prev)
		if err != nil {
			return err
		}
		prev = problem

		fmt.Printf("\n[%d/%d] %s\n> ", i+1, drillCount, noteLine(problem.Pitches))
		if !scanner.Scan() {
			break
		}
		if answer.Validate(scanner.Text(), problem, lvl) {
			correct++
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Not quite — it was %s\n", problem.ExpectedAnswer)
		}
	}

	fmt.Printf("\nScore: %d/%d\n", correct, drillCount)
	return nil
}

func drillProgressionLoop() error {
	key, ok := progression.ParseKey(drillKey)
	if !ok {
		return fmt.Errorf("unrecognized key signature %q", drillKey)
	}

	gen := progression.NewGenerator(time.Now().UnixNano())
	scanner := bufio.NewScanner(os.Stdin)

	var prev *progression.Progression
	correct := 0
	for i := 0; i < drillCount; i++ {
		prog, err := gen.Generate(key, prev)
		if err != nil {
			return err
		}
		prev = prog

		fmt.Printf("\n[%d/%d] Key of %s\n", i+1, drillCount, drillKey)
		for _, step := range prog.Steps {
			fmt.Printf("  %s\n", noteLine(step.Pitches))
		}
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		if progression.Validate(scanner.Text(), prog) {
			correct++
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Not quite — it was %s\n", prog.ExpectedAnswer)
		}
	}

	fmt.Printf("\nScore: %d/%d\n", correct, drillCount)
	return nil
}

func noteLine(pitches []int) string {
	names := make([]string, len(pitches))
	for i, p := range pitches {
		names[i] = pitch.Name(p)
	}
	return strings.Join(names, " ")
}
