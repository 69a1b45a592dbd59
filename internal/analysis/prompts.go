package analysis

// brandProfilePrompt drives the full analysis when the session has
// uploaded assets attached to the request.
const brandProfilePrompt = `Tu es un expert designer et consultant en identité de marque. Analyse les fichiers fournis et crée un profil complet de marque.

Voici ce que tu dois analyser et retourner sous forme de rapport structuré :

1. **IDENTITÉ VISUELLE**
   - Couleurs dominantes et palette chromatique
   - Typographies utilisées et style
   - Style graphique général (moderne, classique, minimaliste, etc.)
   - Éléments visuels récurrents

2. **TON DE VOIX & PERSONNALITÉ**
   - Personnalité de la marque
   - Ton de communication
   - Valeurs transmises
   - Positionnement

3. **RECOMMANDATIONS CRÉATIVES**
   - Points forts à conserver
   - Axes d'amélioration
   - Suggestions pour futurs visuels

Sois précis, professionnel et donne des conseils concrets utilisables pour créer de nouveaux visuels.`

// genericProfilePrompt is the fallback for sessions without assets.
const genericProfilePrompt = `L'utilisateur n'a pas fourni de fichiers de marque. Crée un profil générique mais utile avec des conseils pour développer une identité visuelle cohérente. Donne des recommandations sur les couleurs, typographies, et styles visuels populaires pour différents secteurs.`

// BuildPrompt selects the analysis prompt for the given asset URLs.
func BuildPrompt(fileURLs []string) string {
	if len(fileURLs) == 0 {
		return genericProfilePrompt
	}
	return brandProfilePrompt
}
