package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Sandjune/resumebot/internal/ai"
	"github.com/Sandjune/resumebot/internal/ai/gemini"
	"github.com/Sandjune/resumebot/internal/ai/openai"
	"github.com/Sandjune/resumebot/internal/document"
	"github.com/Sandjune/resumebot/internal/logger"
	"github.com/Sandjune/resumebot/internal/prompt"
	"github.com/Sandjune/resumebot/internal/secrets"
	"github.com/Sandjune/resumebot/internal/session"
	"github.com/Sandjune/resumebot/internal/tailor"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptCoverLetter = "Generate Cover Letter"
	PromptBullets     = "Generate Resume Bullets"

	geminiMissingCredentialMessage = "Missing or invalid Gemini setup. Please configure GEMINI_API_KEY in the environment, " +
		"a .env file, or the llm section of the configuration file."
)

var taskPrompt = promptui.Select{
	Label: "What should resumebot generate?",
	Items: []string{PromptCoverLetter, PromptBullets},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tailored cover letter or resume bullet points",
	Run: func(cmd *cobra.Command, _ []string) {
		generate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("jd-file", "", "job description file (.pdf, .docx, .txt); takes precedence over --jd-text")
	generateCmd.Flags().String("jd-text", "", "job description pasted as text")
	generateCmd.Flags().String("resume-file", "", "resume file (.pdf, .docx, .txt)")
	generateCmd.Flags().String("notes", "", "optional notes/links/extra profile info")
	generateCmd.Flags().StringP("task", "t", "", fmt.Sprintf("generation task: %q or %q (interactive prompt when unset)", prompt.TaskCoverLetter, prompt.TaskBullets))
	generateCmd.Flags().StringP("model", "m", "", "override the configured model identifier")
}

// generate is the main command for the cli.
func generate(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the resumebot", zap.String("version", version))

	extractor := document.New(document.PDF(), document.Docx(), logger)

	sess := session.New()
	fillSession(cmd, sess, extractor, logger)

	task, err := resolveTask(cmd)
	if err != nil {
		logger.Fatal("resolving the task", zap.Error(err))
	}

	llm := config.LLM
	if llm == nil {
		llm = &LLMConfig{}
	}

	completer := newCompleter(ctx, cmd, llm, logger)

	pipeline := tailor.New(completer, logger, providerConfig(llm).MaxLogLength)

	result, err := pipeline.Generate(ctx, sess, task)
	if err != nil {
		logger.Fatal("generation blocked", zap.Error(err))
	}

	fmt.Println(result.Display())
}

// fillSession reads uploads and pasted text into the session. An uploaded
// job description takes precedence over pasted text.
func fillSession(cmd *cobra.Command, sess *session.Session, extractor *document.Extractor, logger *zap.Logger) {
	if jdFile := cmd.Flag("jd-file").Value.String(); jdFile != "" {
		sess.JobDescription = extractFile(extractor, jdFile, logger)
	} else {
		sess.JobDescription = cmd.Flag("jd-text").Value.String()
	}

	if resumeFile := cmd.Flag("resume-file").Value.String(); resumeFile != "" {
		sess.ResumeText = extractFile(extractor, resumeFile, logger)
	}

	sess.Notes = cmd.Flag("notes").Value.String()
}

func extractFile(extractor *document.Extractor, path string, logger *zap.Logger) string {
	f, err := os.Open(path)
	if err != nil {
		logger.Fatal("opening uploaded file", zap.String("path", path), zap.Error(err))
	}
	defer f.Close()

	return extractor.Extract(f, f.Name())
}

func resolveTask(cmd *cobra.Command) (prompt.Task, error) {
	if raw := cmd.Flag("task").Value.String(); raw != "" {
		return prompt.ParseTask(raw)
	}

	_, choice, err := taskPrompt.Run()
	if err != nil {
		return "", err
	}

	if choice == PromptBullets {
		return prompt.TaskBullets, nil
	}

	return prompt.TaskCoverLetter, nil
}

// newCompleter builds the provider selected in the config. A missing
// credential does not abort the run: the unconfigured completer is wired
// instead, so generation degrades to the fixed fallback message without any
// network call.
func newCompleter(ctx context.Context, cmd *cobra.Command, llm *LLMConfig, logger *zap.Logger) ai.Completer {
	provider := strings.TrimSpace(strings.ToLower(llm.Provider))
	cfg := providerConfig(llm)

	model := cfg.Model
	if override := cmd.Flag("model").Value.String(); override != "" {
		model = override
	}

	switch provider {
	case "", "openai":
		key, err := secrets.Load(secrets.Source{
			Name: "openai api key",
			File: cfg.APIKeyFile,
			Env:  "OPENAI_API_KEY",
		})
		if err != nil {
			logger.Warn("openai credential not found", zap.Error(err))
			return ai.NewUnconfigured(ai.MissingCredentialMessage)
		}

		generator, err := openai.NewGenerator(key, model, cfg.Temperature, cfg.MaxLogLength, logger.With(zap.String("provider", "openai")))
		if err != nil {
			logger.Warn("building openai client", zap.Error(err))
			return ai.NewUnconfigured(ai.MissingCredentialMessage)
		}

		return generator
	case "gemini":
		key, err := secrets.Load(secrets.Source{
			Name: "gemini api key",
			File: cfg.APIKeyFile,
			Env:  "GEMINI_API_KEY",
		})
		if err != nil {
			logger.Warn("gemini credential not found", zap.Error(err))
			return ai.NewUnconfigured(geminiMissingCredentialMessage)
		}

		generator, err := gemini.NewGenerator(ctx, key, model, cfg.Temperature, cfg.MaxLogLength, logger.With(zap.String("provider", "gemini")))
		if err != nil {
			logger.Warn("building gemini client", zap.Error(err))
			return ai.NewUnconfigured(geminiMissingCredentialMessage)
		}

		return generator
	default:
		logger.Fatal("unsupported llm provider", zap.String("provider", llm.Provider))
		return nil
	}
}

func providerConfig(llm *LLMConfig) *ProviderConfig {
	provider := strings.TrimSpace(strings.ToLower(llm.Provider))

	cfg := llm.OpenAI
	if provider == "gemini" {
		cfg = llm.Gemini
	}

	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	return cfg
}
