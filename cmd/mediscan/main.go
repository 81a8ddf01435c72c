// Command mediscan runs the medical intake kiosk: a full-screen wizard that
// collects demographics, photos and a symptom questionnaire, then shows a
// locally computed risk assessment.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"mediscan-kiosk/pkg/intake/capture"
	"mediscan-kiosk/pkg/intake/config"
	"mediscan-kiosk/pkg/intake/constants"
	"mediscan-kiosk/pkg/intake/i18n"
	"mediscan-kiosk/internal"
	"mediscan-kiosk/pkg/intake/screens"
	"mediscan-kiosk/pkg/intake/store"
	"mediscan-kiosk/pkg/intake/wizard"
)

func main() {
	configPath := flag.String("config", os.Getenv(constants.ConfigPathEnvVar),
		"path to the kiosk configuration file")
	startPath := flag.String("start-path", "/",
		"wizard path to start at (unknown paths fall back to the start)")
	lang := flag.String("lang", "",
		"override the persisted interface language (en, sd, ur)")
	flag.Parse()

	if err := run(*configPath, *startPath, *lang); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, startPath, lang string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	internal.SetLogPath(cfg.LogPath)
	internal.SetRawLogLevel(cfg.LogLevel)
	logger := internal.Logger()

	st, err := store.Open(cfg.StorePath)
	if err != nil {
		return fmt.Errorf("opening intake store: %w", err)
	}

	loc, err := i18n.New(st)
	if err != nil {
		return err
	}
	if lang != "" {
		if err := loc.SetLanguage(lang); err != nil {
			return err
		}
	}
	if lang == "" {
		if _, err := st.Get(store.KeyLanguage); errors.Is(err, store.ErrNotFound) {
			// Nothing persisted: the config decides the boot language.
			if err := loc.SetLanguage(cfg.DefaultLanguage); err != nil {
				return err
			}
		}
	}

	theme := internal.GetTheme()
	theme.AccentColor = internal.HexToColor(cfg.AccentColor)
	theme.FontPath = cfg.FontPath
	internal.SetTheme(theme)

	internal.Init("MediScan AI", cfg.InputDevice)
	defer internal.SDLCleanup()

	ctx := &screens.Context{
		Store:    st,
		Loc:      loc,
		Cfg:      cfg,
		Detector: capture.NewPigoDetector(cfg.CascadePath),
	}

	router := wizard.NewRouter().
		Register(wizard.StepLanguage, screens.LanguageScreen(ctx)).
		Register(wizard.StepAge, screens.AgeScreen(ctx)).
		Register(wizard.StepGender, screens.GenderScreen(ctx)).
		Register(wizard.StepCamera, screens.CameraScreen(ctx)).
		Register(wizard.StepCNIC, screens.CNICScreen(ctx)).
		Register(wizard.StepPhone, screens.PhoneScreen(ctx)).
		Register(wizard.StepDisease, screens.DiseaseScreen(ctx)).
		Register(wizard.StepDiseaseCapture, screens.DiseaseCaptureScreen(ctx)).
		Register(wizard.StepQuestionnaire, screens.QuestionnaireScreen(ctx)).
		Register(wizard.StepResults, screens.ResultsScreen(ctx)).
		OnTransition(wizard.DefaultTransition(st))

	start, input := wizard.FromPath(startPath)
	logger.Info("starting intake wizard",
		"start", start.String(), "store", cfg.StorePath, "language", loc.Language())

	err = router.Run(start, input)
	if errors.Is(err, screens.ErrCancelled) {
		logger.Info("intake cancelled, shutting down")
		return nil
	}
	return err
}
