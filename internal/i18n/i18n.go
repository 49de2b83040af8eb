package i18n

import (
	"os"
	"strings"
)

var CurrentLang = "en"

// Diccionario simple: Clave -> Mapa de idiomas
var messages = map[string]map[string]string{
	"header_title": {
		"en": "   WIKIDOT APPLICATIONS DELETER CONFIGURATION",
		"es": "   CONFIGURACIÓN DE WIKIDOT APPLICATIONS DELETER",
	},
	"intro_1": {
		"en": "This tool deletes membership applications from your Wikidot inbox.",
		"es": "Esta herramienta borra las solicitudes de membresía de tu inbox de Wikidot.",
	},
	"intro_2": {
		"en": "You will need to log in to Wikidot via browser once.",
		"es": "Necesitarás iniciar sesión en Wikidot una vez a través del navegador.",
	},
	"prompt_data_dir": {
		"en": "Browser session directory",
		"es": "Directorio para la sesión del navegador",
	},
	"prompt_alert_to": {
		"en": "Email for alerts (empty to disable)",
		"es": "Email para alertas (vacío para desactivar)",
	},
	"success_msg": {
		"en": "\n✅ Configuration saved to: %s",
		"es": "\n✅ Configuración guardada en: %s",
	},
	"error_mkdir": {
		"en": "error creating config directory: %w",
		"es": "error creando directorio de config: %w",
	},
	"error_save": {
		"en": "error saving configuration: %w",
		"es": "error guardando configuración: %w",
	},
	"login_ask": {
		"en": "\nDo you want to log in to Wikidot now? (y/n)",
		"es": "\n¿Deseas iniciar sesión en Wikidot ahora? (s/n)",
	},
	"login_start": {
		"en": "Starting login flow...",
		"es": "Iniciando flujo de login...",
	},
	"browser_nav_open": {
		"en": "ℹ️  Browser open. Please log in to your Wikidot account.",
		"es": "ℹ️  Navegador abierto. Por favor, inicia sesión en tu cuenta de Wikidot.",
	},
	"browser_nav_close": {
		"en": "ℹ️  When finished, simply close the browser window.",
		"es": "ℹ️  Cuando hayas terminado, simplemente cierra la ventana del navegador.",
	},
	"browser_system": {
		"en": "Using system browser: %s",
		"es": "Usando navegador del sistema: %s",
	},
	"browser_download_fail": {
		"en": "System browser failed to launch, downloading a bundled one...",
		"es": "El navegador del sistema no arrancó, descargando uno propio...",
	},
	"verifying_session": {
		"en": "🔍 Verifying session in background...",
		"es": "🔍 Verificando sesión en segundo plano...",
	},
	"session_ok": {
		"en": "✅ Session saved and verified.",
		"es": "✅ Sesión guardada y verificada correctamente.",
	},
	"session_invalid": {
		"en": "Wikidot session is not valid. Run 'login' first.",
		"es": "La sesión de Wikidot no es válida. Ejecuta 'login' primero.",
	},
	"opening_inbox": {
		"en": "📬 Opening your Wikidot inbox...",
		"es": "📬 Abriendo tu inbox de Wikidot...",
	},
	"scanning": {
		"en": "Scanning your inbox for applications...",
		"es": "Buscando solicitudes en tu inbox...",
	},
	"scan_done": {
		"en": "Scanned %d pages.",
		"es": "Revisadas %d páginas.",
	},
	"unsupported_locales": {
		"en": "Applications in these languages are recognised but not deleted yet: %s",
		"es": "Las solicitudes en estos idiomas se reconocen pero aún no se borran: %s",
	},
	"nothing_found": {
		"en": "No applications found.",
		"es": "No se encontraron solicitudes.",
	},
	"confirm_title": {
		"en": "Delete %d applications?",
		"es": "¿Borrar %d solicitudes?",
	},
	"confirm_support": {
		"en": "Please report any issues during the deletion process to %s.",
		"es": "Por favor, informa de cualquier problema durante el borrado a %s.",
	},
	"confirm_prompt": {
		"en": "Proceed with deletion? [y/N]",
		"es": "¿Continuar con el borrado? [s/N]",
	},
	"cancelled": {
		"en": "Cancelled.",
		"es": "Cancelado.",
	},
	"dry_run": {
		"en": "Dry run - no messages will be deleted.",
		"es": "Simulación - no se borrará ningún mensaje.",
	},
	"deleting": {
		"en": "Deleting %d applications...",
		"es": "Borrando %d solicitudes...",
	},
	"batch_progress": {
		"en": "Batch %d of %d (%d applications)",
		"es": "Lote %d de %d (%d solicitudes)",
	},
	"delete_done": {
		"en": "✅ Deleted %d applications.",
		"es": "✅ Borradas %d solicitudes.",
	},
	"delete_failed": {
		"en": "Failed to delete applications.",
		"es": "No se pudieron borrar las solicitudes.",
	},
	"delete_failed_support": {
		"en": "Please send a message to %s.",
		"es": "Por favor, envía un mensaje a %s.",
	},
	"refresh_failed": {
		"en": "Could not refresh the inbox view: %v",
		"es": "No se pudo refrescar el inbox: %v",
	},
	"config_missing": {
		"en": "No config file found, using defaults.",
		"es": "No se encontró fichero de configuración, usando valores por defecto.",
	},
	"config_read_error": {
		"en": "Error reading config file: %v",
		"es": "Error leyendo el fichero de configuración: %v",
	},
	"config_decode_error": {
		"en": "Error decoding config: %v",
		"es": "Error decodificando la configuración: %v",
	},
	"notifier_skipped": {
		"en": "No alert email configured, skipping notification.",
		"es": "No hay email de alertas configurado, se omite la notificación.",
	},
	"notifier_no_binary": {
		"en": "msmtp not found in PATH",
		"es": "msmtp no encontrado en el PATH",
	},
	"notifier_sending": {
		"en": "📧 Sending alert to %s...",
		"es": "📧 Enviando alerta a %s...",
	},
	"notifier_fail": {
		"en": "msmtp failed: %w (%s)",
		"es": "msmtp falló: %w (%s)",
	},
	"notifier_error": {
		"en": "Could not send alert: %v",
		"es": "No se pudo enviar la alerta: %v",
	},
	"alert_subject_ok": {
		"en": "Wikidot applications deleted",
		"es": "Solicitudes de Wikidot borradas",
	},
	"alert_subject_fail": {
		"en": "Wikidot applications deletion failed",
		"es": "Falló el borrado de solicitudes de Wikidot",
	},
}

// Init detecta el idioma del sistema
func Init() {
	// En Linux/Mac, la variable LANG suele ser "es_ES.UTF-8", "en_US.UTF-8", etc.
	langEnv := os.Getenv("LANG")
	if strings.HasPrefix(langEnv, "es") {
		CurrentLang = "es"
	} else {
		CurrentLang = "en"
	}
}

// T traduce una clave al idioma actual
func T(key string) string {
	if translations, ok := messages[key]; ok {
		if val, ok := translations[CurrentLang]; ok {
			return val
		}
		// Fallback a inglés si falta la traducción específica
		return translations["en"]
	}
	return key // Devuelve la clave si no existe
}
