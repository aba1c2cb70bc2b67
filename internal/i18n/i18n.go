// Package i18n translates user-facing API messages (en, pt, nl).
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// Supports reports whether the translator has messages for locale.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale picks the first supported language from the Accept-Language header.
// Region suffixes are ignored ("pt-BR" is "pt"); quality weights are taken in listed order.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	t := GetTranslator()
	for _, part := range strings.Split(acceptLang, ",") {
		lang := strings.TrimSpace(strings.Split(part, ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if t.Supports(lang) {
			return lang
		}
	}

	return DefaultLocale
}

func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			ErrKeyInvalidRequest:     "Invalid request",
			ErrKeyInvalidRequestBody: "Invalid request body",
			ErrKeyInternalError:      "An unexpected error occurred",
			ErrKeyUnauthorized:       "Unauthorized",
			ErrKeyAPIKeyRequired:     "API key is required",
			ErrKeyInvalidAPIKey:      "Invalid API key",
			ErrKeyNotFound:           "Not found",
			ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
			ErrKeyConflict:           "Conflict",
			ErrKeyTimeout:            "The request took too long",
			ErrKeyServiceUnavailable: "The catalog is temporarily unavailable, please try again shortly",

			ErrKeyInvalidQuantity:      "Quantity must be a positive whole number",
			ErrKeyUnavailableFlavor:    "This flavor is not available for the product",
			ErrKeyInvalidWeightOption:  "This weight is not offered for the product",
			ErrKeyCartFull:             "Your cart is full",
			ErrKeyLineNotFound:         "That item is no longer in your cart",
			ErrKeyProductNotFound:      "Product not found",
			ErrKeyCategoryNotFound:     "Category not found",
			ErrKeyPromotionNotFound:    "Promotion not found",
			ErrKeyInvalidPromotionType: "Promotion type must be top_deal or most_selling",
			ErrKeyNameRequired:         "Name is required",
		},
		"pt": {
			ErrKeyInvalidRequest:     "Requisição inválida",
			ErrKeyInvalidRequestBody: "Corpo da requisição inválido",
			ErrKeyInternalError:      "Ocorreu um erro inesperado",
			ErrKeyUnauthorized:       "Não autorizado",
			ErrKeyAPIKeyRequired:     "Chave de API é obrigatória",
			ErrKeyInvalidAPIKey:      "Chave de API inválida",
			ErrKeyNotFound:           "Não encontrado",
			ErrKeyRateLimitExceeded:  "Muitas requisições, tente novamente mais tarde",
			ErrKeyConflict:           "Conflito",
			ErrKeyTimeout:            "A requisição demorou demais",
			ErrKeyServiceUnavailable: "O catálogo está temporariamente indisponível, tente novamente em breve",

			ErrKeyInvalidQuantity:      "A quantidade deve ser um número inteiro positivo",
			ErrKeyUnavailableFlavor:    "Este sabor não está disponível para o produto",
			ErrKeyInvalidWeightOption:  "Este peso não é oferecido para o produto",
			ErrKeyCartFull:             "Seu carrinho está cheio",
			ErrKeyLineNotFound:         "Este item não está mais no seu carrinho",
			ErrKeyProductNotFound:      "Produto não encontrado",
			ErrKeyCategoryNotFound:     "Categoria não encontrada",
			ErrKeyPromotionNotFound:    "Promoção não encontrada",
			ErrKeyInvalidPromotionType: "O tipo de promoção deve ser top_deal ou most_selling",
			ErrKeyNameRequired:         "O nome é obrigatório",
		},
		"nl": {
			ErrKeyInvalidRequest:     "Ongeldig verzoek",
			ErrKeyInvalidRequestBody: "Ongeldige aanvraag body",
			ErrKeyInternalError:      "Er is een onverwachte fout opgetreden",
			ErrKeyUnauthorized:       "Niet geautoriseerd",
			ErrKeyAPIKeyRequired:     "API-sleutel is vereist",
			ErrKeyInvalidAPIKey:      "Ongeldige API-sleutel",
			ErrKeyNotFound:           "Niet gevonden",
			ErrKeyRateLimitExceeded:  "Te veel verzoeken, probeer het later opnieuw",
			ErrKeyConflict:           "Conflict",
			ErrKeyTimeout:            "Het verzoek duurde te lang",
			ErrKeyServiceUnavailable: "De catalogus is tijdelijk niet beschikbaar, probeer het zo opnieuw",

			ErrKeyInvalidQuantity:      "Het aantal moet een positief geheel getal zijn",
			ErrKeyUnavailableFlavor:    "Deze smaak is niet beschikbaar voor het product",
			ErrKeyInvalidWeightOption:  "Dit gewicht wordt niet aangeboden voor het product",
			ErrKeyCartFull:             "Je winkelwagen is vol",
			ErrKeyLineNotFound:         "Dit artikel staat niet meer in je winkelwagen",
			ErrKeyProductNotFound:      "Product niet gevonden",
			ErrKeyCategoryNotFound:     "Categorie niet gevonden",
			ErrKeyPromotionNotFound:    "Promotie niet gevonden",
			ErrKeyInvalidPromotionType: "Promotietype moet top_deal of most_selling zijn",
			ErrKeyNameRequired:         "Naam is verplicht",
		},
	}
}
