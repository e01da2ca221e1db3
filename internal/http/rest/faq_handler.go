package rest

import (
	"net/http"

	"github.com/mvbakke/wcag-reviews/util"
	"github.com/mvbakke/wcag-reviews/util/values"
)

type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var faqEntries = []FAQEntry{
	{
		Question: "Hva er WCAG?",
		Answer:   "WCAG (Web Content Accessibility Guidelines) er internasjonale retningslinjer for tilgjengelighet på nett. Retningslinjene er utviklet av W3C og definerer hvordan man kan gjøre nettinnhold mer tilgjengelig for personer med funksjonshemninger.",
	},
	{
		Question: "Hva betyr WCAG-score?",
		Answer:   "WCAG-scoren er en vurdering av hvor tilgjengelig et nettsted er. Scoren går fra 0 til 100, der 100 er best. Scoren beregnes basert på WAVE-analyseverktøyet som sjekker for ulike tilgjengelighetsproblemer som kontrastfeil, manglende alt-tekster, feil bruk av overskrifter, etc.",
	},
	{
		Question: "Hvordan legges til en vurdering?",
		Answer:   "For å legge til en vurdering må du først opprette en konto og logge inn. Deretter kan du gå til \"Legg til vurdering\"-siden, fylle inn nettstedets navn og URL, og deretter fylle i vurderingsdetaljene.",
	},
	{
		Question: "Hva er en WAVE-analyse?",
		Answer:   "WAVE (Web Accessibility Evaluation Tool) er et verktøy som analyserer nettsider for tilgjengelighetsproblemer. Verktøyet identifiserer feil, advarsler og funksjoner som kan forbedre tilgjengeligheten.",
	},
	{
		Question: "Hvordan fungerer stemming?",
		Answer:   "Du kan stemme opp eller ned på vurderinger du mener er nyttige eller unyttige. Samme stemme to ganger fjerner stemmen din, og motsatt stemme bytter den. Vurderinger sorteres som standard etter popularitet.",
	},
}

type HelpContent struct {
	Title    string   `json:"title"`
	Sections []string `json:"sections"`
}

var helpContent = HelpContent{
	Title: "Hjelp",
	Sections: []string{
		"Registrer deg med brukernavn og passord, eller logg inn med Google.",
		"Søk etter nettsteder på forsiden, og sorter etter popularitet, score eller nyeste.",
		"Legg til en vurdering med score fra 0 til 100 og en beskrivelse på minst 10 tegn.",
		"Rapporter upassende vurderinger, så ser en moderator på dem.",
	},
}

func (api *API) GetFAQ(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	return &ServerResponse{
		Message:    "FAQ hentet",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       faqEntries,
	}
}

func (api *API) GetHelp(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	return &ServerResponse{
		Message:    "Hjelp hentet",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       helpContent,
	}
}
