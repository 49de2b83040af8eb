package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"wikidot-applications-deleter/internal/browser"
	"wikidot-applications-deleter/internal/config"
	"wikidot-applications-deleter/internal/i18n"
	"wikidot-applications-deleter/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Configure the browser session directory and alerts",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("========================================")
		fmt.Println(i18n.T("header_title"))
		fmt.Println("========================================")
		fmt.Println(i18n.T("intro_1"))
		fmt.Println(i18n.T("intro_2"))
		fmt.Println("========================================")
		fmt.Println("")

		// 1. Browser profile
		dataDir := prompt(i18n.T("prompt_data_dir"), config.AppConfig.UserDataDir)
		absPath, err := filepath.Abs(expandPath(dataDir))
		if err != nil {
			return err
		}
		viper.Set("user_data_dir", absPath)

		// 2. Alerts
		alertTo := prompt(i18n.T("prompt_alert_to"), config.AppConfig.EmailAlertTo)
		viper.Set("email_alert_to", alertTo)

		// 3. Guardar
		path, err := saveConfig()
		if err != nil {
			return err
		}
		fmt.Printf(i18n.T("success_msg")+"\n", path)

		if err := viper.Unmarshal(&config.AppConfig); err != nil {
			return err
		}

		// 4. Login Ask
		ans := strings.ToLower(prompt(i18n.T("login_ask"), ""))
		if ans == "s" || ans == "y" || ans == "yes" || ans == "si" {
			return loginFlow()
		}
		return nil
	},
}

func saveConfig() (string, error) {
	path := viper.ConfigFileUsed()
	if path == "" {
		if err := os.MkdirAll(config.Dir(), 0755); err != nil {
			return "", fmt.Errorf(i18n.T("error_mkdir"), err)
		}
		path = filepath.Join(config.Dir(), "config.yaml")
	}
	if err := viper.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf(i18n.T("error_save"), err)
	}
	return path, nil
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to Wikidot in a visible browser and save the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return loginFlow()
	},
}

func loginFlow() error {
	fmt.Println(i18n.T("login_start"))

	userDataDir := config.AppConfig.UserDataDir
	if err := os.MkdirAll(userDataDir, 0755); err != nil {
		return err
	}

	// Headless = false para que el usuario pueda ver y escribir
	bm, err := browser.New(userDataDir, config.AppConfig.MessagesURL, false)
	if err != nil {
		return err
	}
	if err := bm.ManualLogin(); err != nil {
		bm.Close()
		return err
	}
	bm.Close()

	// Verificación headless inmediata
	bmHeadless, err := browser.New(userDataDir, config.AppConfig.MessagesURL, true)
	if err != nil {
		return err
	}
	defer bmHeadless.Close()

	if !bmHeadless.VerifySession() {
		logger.Warn("%s", i18n.T("session_invalid"))
		return errSessionInvalid
	}
	logger.Info("%s", i18n.T("session_ok"))
	return nil
}
