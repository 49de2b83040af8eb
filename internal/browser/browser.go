package browser

import (
	"fmt"
	"strings"
	"time"

	"wikidot-applications-deleter/internal/i18n"
	"wikidot-applications-deleter/internal/logger"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const (
	URLWikidotHome  = "https://www.wikidot.com"
	URLWikidotLogin = "https://www.wikidot.com/default--flow/login__LoginPopupScreen"
)

// Manager gestiona la instancia del navegador y la sesión
type Manager struct {
	Browser     *rod.Browser
	DataDir     string // Directorio para guardar cookies y sesión
	MessagesURL string
}

// New crea una nueva instancia del gestor del navegador
func New(userDataDir, messagesURL string, headless bool) (*Manager, error) {
	// Intentamos buscar el navegador del sistema primero (Chrome instalado)
	path, _ := launcher.LookPath()

	l := newLauncher(userDataDir, headless)
	if path != "" {
		logger.Debug(i18n.T("browser_system"), path)
		l = l.Bin(path)
	}

	// Si no es headless (modo login), aseguramos que la ventana sea visible
	if !headless {
		l = l.Set("start-maximized")
	}

	url, err := l.Launch()
	if err != nil {
		// Si falla, dejamos que rod descargue su propio Chromium
		logger.Info("%s", i18n.T("browser_download_fail"))
		url, err = newLauncher(userDataDir, headless).Launch()
		if err != nil {
			return nil, fmt.Errorf("launching browser: %w", err)
		}
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Manager{
		Browser:     browser,
		DataDir:     userDataDir,
		MessagesURL: messagesURL,
	}, nil
}

func newLauncher(userDataDir string, headless bool) *launcher.Launcher {
	return launcher.New().
		UserDataDir(userDataDir). // Persistencia de sesión
		Headless(headless).
		Set("lang", "en-US"). // The pager's "next »" label is English only
		Devtools(false).
		Set("disable-blink-features", "AutomationControlled").
		Set("exclude-switches", "enable-automation").
		Set("use-automation-extension", "false")
}

// Close cierra el navegador
func (m *Manager) Close() {
	if m.Browser != nil {
		if err := m.Browser.Close(); err != nil {
			logger.Debug("closing browser: %v", err)
		}
	}
}

// ManualLogin abre la página de login y espera a que el usuario cierre el navegador
func (m *Manager) ManualLogin() error {
	page, err := m.Browser.Page(proto.TargetCreateTarget{URL: URLWikidotHome})
	if err != nil {
		return fmt.Errorf("opening page: %w", err)
	}
	if err := page.Navigate(URLWikidotLogin); err != nil {
		return fmt.Errorf("opening login page: %w", err)
	}

	fmt.Println(i18n.T("browser_nav_open"))
	fmt.Println(i18n.T("browser_nav_close"))

	// Bloquea la ejecución hasta que se cierre el navegador
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()
	for {
		<-ticker.C
		if _, err := m.Browser.Pages(); err != nil {
			return nil
		}
	}
}

// VerifySession comprueba si las cookies actuales permiten abrir el inbox
func (m *Manager) VerifySession() bool {
	fmt.Println(i18n.T("verifying_session"))
	page, err := m.Browser.Page(proto.TargetCreateTarget{URL: m.MessagesURL})
	if err != nil {
		logger.Debug("opening messages page: %v", err)
		return false
	}
	defer page.Close()

	if err := page.Timeout(15 * time.Second).WaitLoad(); err != nil {
		logger.Debug("waiting for messages page: %v", err)
		return false
	}
	info, err := page.Info()
	if err != nil {
		return false
	}
	// Sin sesión Wikidot redirige a la pantalla de login
	return isMessagesURL(info.URL)
}

func isMessagesURL(url string) bool {
	return strings.Contains(url, "wikidot.com/account/messages") && !strings.Contains(url, "login")
}
