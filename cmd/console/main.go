package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"strings"

	"courselens/internal/config"
	"courselens/internal/dataset"
	"courselens/internal/indexer"
	"courselens/internal/llm"
	"courselens/internal/rag"
	"courselens/internal/search"
	"courselens/internal/storage"
	"courselens/internal/vectorstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Console sessions keep logs out of the conversation unless debugging
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})
	slog.SetDefault(slog.New(handler))

	ctx := context.Background()
	engine, err := setup(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	runInteractive(ctx, engine)
}

// setup wires the dataset, index, and services into a query engine.
// Any failure here is fatal: the engine is never constructed partially.
func setup(ctx context.Context, cfg *config.Config) (rag.Engine, error) {
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := storage.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	students, err := dataset.Load(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	if err := storage.NewStudentRepo(db).ReplaceAll(ctx, students); err != nil {
		return nil, fmt.Errorf("failed to store students: %w", err)
	}
	fmt.Printf("Loaded %d student records\n", len(students))

	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}
	if err := vectorStore.EnsureCollection(ctx, cfg.QdrantCollection, cfg.QdrantVectorSize); err != nil {
		return nil, fmt.Errorf("failed to ensure collection: %w", err)
	}

	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModelName, cfg.QdrantVectorSize)
	pipeline := indexer.NewPipeline(embedder, vectorStore, cfg.QdrantCollection)
	if _, err := pipeline.IndexDocuments(ctx, dataset.BuildDocuments(students)); err != nil {
		return nil, fmt.Errorf("failed to index documents: %w", err)
	}

	searcher := search.NewService(embedder, vectorStore, cfg.QdrantCollection)
	generator := llm.NewCachedGenerator(llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName))
	memory := rag.NewConversationMemory(cfg.MemoryMaxBytes)
	return rag.NewEngine(searcher, generator, memory), nil
}

func runInteractive(ctx context.Context, engine rag.Engine) {
	fmt.Println("\nCourse Enrollment Analysis System")
	fmt.Println("---------------------------------")
	printHelp()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nEnter your question (or command): ")
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(input) {
		case "exit":
			fmt.Println("Exiting program...")
			return
		case "help":
			printHelp()
			continue
		case "examples":
			printExamples()
			continue
		case "analyze":
			runAnalysis(ctx, engine)
			continue
		case "topics":
			printTopics(engine)
			continue
		case "test":
			runTestScenarios(ctx, engine)
			continue
		}

		if len(input) < 3 {
			fmt.Println("Please enter a longer question.")
			continue
		}

		var filter map[string]any
		if rag.IsComparative(input) {
			fmt.Println("\nNote: Detected comparative question - analyzing all relevant groups...")
		} else {
			filter = chooseFilter(scanner)
		}

		fmt.Println("\nProcessing your question...")
		answer := engine.Answer(ctx, input, filter)

		fmt.Println("\nAnalysis:")
		fmt.Println("---------")
		fmt.Println(answer.Text)
		if answer.Validation != nil {
			for _, warning := range answer.Validation.Warnings {
				fmt.Printf("Note: %s\n", warning)
			}
		}
		fmt.Println("\nYou can ask another question or type 'exit' to quit.")
	}
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("- 'examples': Show example questions")
	fmt.Println("- 'analyze': Run data quality analysis")
	fmt.Println("- 'topics': Show frequently discussed topics")
	fmt.Println("- 'test': Run test questions")
	fmt.Println("- 'help': Show this menu")
	fmt.Println("- 'exit': Quit the program")
}

// exampleQuestions catalogs questions that work well with the dataset.
var exampleQuestions = []struct {
	category  string
	questions []string
}{
	{
		category: "Performance Analysis",
		questions: []string{
			"What's the typical range of midterm scores for international students?",
			"How do first-generation students perform in final exams?",
			"Is there a relationship between study hours and exam performance?",
		},
	},
	{
		category: "Engagement Patterns",
		questions: []string{
			"What attendance patterns do we see among high-performing students?",
			"How many hours do students with above-average grades typically study?",
			"What's the relationship between attendance and final exam scores?",
		},
	},
	{
		category: "Student Feedback",
		questions: []string{
			"What common challenges do international students mention?",
			"What aspects of the course do first-generation students find most helpful?",
			"How do students describe their learning experience in this course?",
		},
	},
}

func printExamples() {
	fmt.Println("\nExample Questions You Can Ask:")
	for _, group := range exampleQuestions {
		fmt.Printf("\n%s:\n", group.category)
		for _, q := range group.questions {
			fmt.Printf("- %s\n", q)
		}
	}
}

func runAnalysis(ctx context.Context, engine rag.Engine) {
	assessment, err := engine.AnalyzeQuality(ctx)
	if err != nil {
		fmt.Println("Data quality analysis failed. Please try again.")
		return
	}
	fmt.Println("\nData Quality Analysis:")
	fmt.Printf("Reliability Score: %d/100\n", assessment.Score)
	fmt.Printf("Quality: %s\n", assessment.Explanation)
	for _, rec := range assessment.Recommendations {
		fmt.Printf("- %s\n", rec)
	}
}

func printTopics(engine rag.Engine) {
	counts := engine.TopicCounts()
	if len(counts) == 0 {
		fmt.Println("\nNo topics discussed yet.")
		return
	}

	type topicCount struct {
		topic string
		count int
	}
	topics := make([]topicCount, 0, len(counts))
	for topic, count := range counts {
		topics = append(topics, topicCount{topic, count})
	}
	sort.Slice(topics, func(i, j int) bool {
		if topics[i].count != topics[j].count {
			return topics[i].count > topics[j].count
		}
		return topics[i].topic < topics[j].topic
	})

	fmt.Println("\nFrequently Discussed Topics:")
	for _, tc := range topics {
		fmt.Printf("- %s: %d times\n", tc.topic, tc.count)
	}
}

// testScenarios exercises the main question types against the live index.
var testScenarios = []struct {
	category string
	question string
	filter   map[string]any
}{
	{
		category: "Demographic Analysis",
		question: "What patterns do you notice in how international students describe their learning experience?",
		filter:   map[string]any{"international_student": "Yes"},
	},
	{
		category: "Demographic Analysis",
		question: "How do first-generation students describe their course experience?",
		filter:   map[string]any{"first_gen_student": "Yes"},
	},
	{
		category: "Performance Correlation",
		question: "What's the relationship between study hours and final exam scores?",
	},
	{
		category: "Performance Correlation",
		question: "How does attendance rate correlate with exam performance?",
	},
}

func runTestScenarios(ctx context.Context, engine rag.Engine) {
	fmt.Println("\nTesting the analysis system...")
	for _, scenario := range testScenarios {
		fmt.Printf("\nCategory: %s\n", scenario.category)
		fmt.Printf("Question: %s\n", scenario.question)

		answer := engine.Answer(ctx, scenario.question, scenario.filter)
		fmt.Printf("\nResponse: %s\n", answer.Text)
		fmt.Println(strings.Repeat("-", 50))
	}
}

// chooseFilter presents the filter menu and returns the chosen exact-match
// constraint, or nil for no filter.
func chooseFilter(scanner *bufio.Scanner) map[string]any {
	fmt.Println("\nFilter Options:")
	fmt.Println("1: International Students")
	fmt.Println("2: First-Generation Students")
	fmt.Println("3: Filter by Gender")
	fmt.Println("4: All Students")
	fmt.Print("\nChoose filter (1-4): ")

	if !scanner.Scan() {
		return nil
	}
	switch strings.TrimSpace(scanner.Text()) {
	case "1":
		return map[string]any{"international_student": "Yes"}
	case "2":
		return map[string]any{"first_gen_student": "Yes"}
	case "3":
		return chooseGenderFilter(scanner)
	case "4":
		return nil
	default:
		fmt.Println("Invalid choice. Using no filter.")
		return nil
	}
}

func chooseGenderFilter(scanner *bufio.Scanner) map[string]any {
	fmt.Println("\nGender Options:")
	fmt.Println("a: Female Students")
	fmt.Println("b: Male Students")
	fmt.Println("c: Non-binary Students")
	fmt.Print("\nChoose gender filter (a-c): ")

	if !scanner.Scan() {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "a":
		return map[string]any{"gender": "Female"}
	case "b":
		return map[string]any{"gender": "Male"}
	case "c":
		return map[string]any{"gender": "Non-binary"}
	default:
		fmt.Println("Invalid gender choice. Using no filter.")
		return nil
	}
}
