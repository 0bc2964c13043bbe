package main

import (
	"context"
	"io"
	"log/slog"
	"net"

	"github.com/Muzammil-Ahm3d/jobready"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Store       jobready.DatasetStore
	Categories  jobready.CategoryService
	Questions   jobready.QuestionService
	Resolver    jobready.Resolver
	Reformatter jobready.Reformatter
	Importer    jobready.Importer
}

// Globals are flags shared by every command.
type Globals struct {
	Verbose bool `short:"v" help:"Log debug output"`

	Backend   string `name:"store" enum:"auto,fs,gcs,sqlite" default:"auto" env:"JOBREADY_STORE" help:"Dataset backend (auto picks gcs when a bucket is set, then sqlite, then fs)"`
	Data      string `default:"${data}" env:"JOBREADY_DATA" help:"Path of the JSON dataset file"`
	GCSBucket string `name:"gcs-bucket" env:"JOBREADY_GCS_BUCKET" help:"Cloud Storage bucket holding the dataset"`
	GCSObject string `name:"gcs-object" default:"${gcs_object}" env:"JOBREADY_GCS_OBJECT" help:"Object name prefix of the dataset in the bucket"`
	SQLite    string `name:"sqlite" env:"JOBREADY_SQLITE" help:"Path of a SQLite database holding the dataset"`

	GeminiAPIKey     string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key enabling the AI fallback"`
	Model            string `default:"${model}" env:"JOBREADY_MODEL" help:"Gemini model"`
	MaxHistoryTokens int    `name:"max-history-tokens" default:"2000" env:"JOBREADY_MAX_HISTORY_TOKENS" help:"Token budget for chat history sent to the model"`
	MinMatchLength   int    `name:"min-match-length" default:"0" env:"JOBREADY_MIN_MATCH_LENGTH" help:"Shortest query that may match a stored title"`
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Globals

	Serve      ServeCmd      `cmd:"" help:"Serve the JSON API"`
	Ask        AskCmd        `cmd:"" help:"Ask the chatbot a question"`
	Reformat   ReformatCmd   `cmd:"" help:"Rewrite stored answers as markdown"`
	Import     ImportCmd     `cmd:"" help:"Import questions from a JSON file"`
	Categories CategoriesCmd `cmd:"" help:"Manage categories"`
	Questions  QuestionsCmd  `cmd:"" help:"Manage questions"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr       string  `default:":8080" env:"JOBREADY_ADDR" help:"Listen address"`
	AdminToken string  `name:"admin-token" env:"JOBREADY_ADMIN_TOKEN" help:"Token for admin routes; admin routes are disabled without one"`
	ChatRate   float64 `name:"chat-rate" default:"1" help:"Chat requests per second per client"`
	ChatBurst  int     `name:"chat-burst" default:"5" help:"Chat request burst per client"`

	// Listener replaces the listen address. Used by tests.
	Listener net.Listener `kong:"-"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Query string `arg:"" help:"Question to ask"`
}

// ReformatCmd is the "reformat" subcommand.
type ReformatCmd struct{}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	File string `arg:"" type:"existingfile" help:"JSON file of questions keyed by category"`
}

// CategoriesCmd groups the category subcommands.
type CategoriesCmd struct {
	List   CategoriesListCmd   `cmd:"" default:"1" help:"List categories"`
	Add    CategoriesAddCmd    `cmd:"" help:"Add a category"`
	Delete CategoriesDeleteCmd `cmd:"" help:"Delete a category and its questions"`
}

// CategoriesListCmd is the "categories list" subcommand.
type CategoriesListCmd struct{}

// CategoriesAddCmd is the "categories add" subcommand.
type CategoriesAddCmd struct {
	Name        string `arg:"" help:"Category name"`
	Slug        string `help:"Slug (derived from the name when empty)"`
	Description string `help:"Short description"`
	Order       int    `help:"Display order (appended when zero)"`
}

// CategoriesDeleteCmd is the "categories delete" subcommand.
type CategoriesDeleteCmd struct {
	ID    int  `arg:"" help:"Category id"`
	Force bool `help:"Confirm deletion"`
}

// QuestionsCmd groups the question subcommands.
type QuestionsCmd struct {
	List   QuestionsListCmd   `cmd:"" default:"1" help:"List questions"`
	Add    QuestionsAddCmd    `cmd:"" help:"Add a question"`
	Delete QuestionsDeleteCmd `cmd:"" help:"Delete a question"`
}

// QuestionsListCmd is the "questions list" subcommand.
type QuestionsListCmd struct {
	Category string `short:"c" help:"Only questions in the category with this slug"`
	Search   string `short:"s" help:"Only questions whose title contains this text"`
	Limit    int    `short:"n" help:"Maximum number of questions"`
}

// QuestionsAddCmd is the "questions add" subcommand.
type QuestionsAddCmd struct {
	CategoryID  int    `arg:"" name:"category-id" help:"Category id"`
	Title       string `arg:"" help:"Question title"`
	Answer      string `arg:"" help:"Markdown answer"`
	CodeSnippet string `name:"code" help:"Code snippet"`
}

// QuestionsDeleteCmd is the "questions delete" subcommand.
type QuestionsDeleteCmd struct {
	ID    int  `arg:"" help:"Question id"`
	Force bool `help:"Confirm deletion"`
}
