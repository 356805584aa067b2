package domain

import (
	"fmt"
	"strings"
)

// Wire grammar markers produced by the model and consumed by the parser.
const (
	// SegmentDelimiter separates one article's block from the next.
	SegmentDelimiter = "---ARTICLE---"

	// SegmentTerminator conventionally closes an article block.
	// It is stripped, never required.
	SegmentTerminator = "---FIN---"
)

// DefaultUserPrompt is the user turn template. %s receives the topic.
const DefaultUserPrompt = `Rédige un dossier de presse sur : "%s". Cite explicitement les médias sources.`

// DefaultSystemInstruction returns the system instruction describing the
// strict output grammar, the closed category list and the sourcing policy.
func DefaultSystemInstruction() string {
	labels := make([]string, 0, len(AllCategories()))
	for _, c := range AllCategories() {
		labels = append(labels, c.String())
	}

	return fmt.Sprintf(`Tu es "Stony News AI", un agent d'IA journalistique professionnel.
Ta mission est de fournir des résumés factuels issus de sources vérifiées.

FORMAT DE SORTIE (STRICT) :
Pour chaque article trouvé, utilise :
%s
Titre: [Titre informatif]
Résumé: [Résumé de 5-7 lignes : Qui, Quoi, Où, Quand, Pourquoi]
Catégorie: [%s]
%s

RÈGLES DE SOURCAGE :
- Priorise %s.
- Adopte un ton neutre, sans adjectif subjectif ni prise de position.
- Si une information est incertaine, utilise des termes prudents ("selon les premières informations", "sous réserve de confirmation").
- Ne cite que des faits confirmés.`,
		SegmentDelimiter,
		strings.Join(labels, ", "),
		SegmentTerminator,
		strings.Join(TrustedOutlets, ", "),
	)
}
