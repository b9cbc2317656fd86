package response

// Status strings returned to API clients. The API has always spoken French.
const (
	DiseaseDisplayError    = "Une erreur est survenue lors de l'affichage des maladies."
	DiseaseCreateError     = "Une erreur est survenue lors de la création de la maladie."
	DiseasePermissionError = "L'utilisateur n'a pas la permission de créer une maladie."
	DiseaseUpdateError     = "Une erreur est survenue lors de la mise à jour de la maladie."
	DiseaseDeleteError     = "Une erreur est survenue lors de la suppression de la maladie."
	DiseaseCreateSuccess   = "Maladie créée avec succès."
	DiseaseUpdateSuccess   = "Maladie mise à jour avec succès."
	DiseaseDeleteSuccess   = "Maladie supprimée avec succès."

	LocalizationDisplayError    = "Une erreur est survenue lors de l'affichage des localisations."
	LocalizationCreateError     = "Une erreur est survenue lors de la création de la localisation."
	LocalizationPermissionError = "L'utilisateur n'a pas la permission de créer une localisation."
	LocalizationUpdateError     = "Une erreur est survenue lors de la mise à jour de la localisation."
	LocalizationDeleteError     = "Une erreur est survenue lors de la suppression de la localisation."
	LocalizationCreateSuccess   = "Localisation créée avec succès."
	LocalizationUpdateSuccess   = "Localisation mise à jour avec succès."
	LocalizationDeleteSuccess   = "Localisation supprimée avec succès."

	ReportcaseDisplayError    = "Une erreur est survenue lors de l'affichage des cas reportés."
	ReportcaseCreateError     = "Une erreur est survenue lors de la création du cas reporté."
	ReportcasePermissionError = "L'utilisateur n'a pas la permission de créer un cas reporté."
	ReportcaseUpdateError     = "Une erreur est survenue lors de la mise à jour du cas reporté."
	ReportcaseDeleteError     = "Une erreur est survenue lors de la suppression du cas reporté."
	ReportcaseCreateSuccess   = "Cas reporté créé avec succès."
	ReportcaseUpdateSuccess   = "Cas reporté mis à jour avec succès."
	ReportcaseDeleteSuccess   = "Cas reporté supprimé avec succès."

	SignupError             = "Une erreur est survenue lors de la création du compte."
	LoginError              = "Une erreur est survenue lors de la connexion."
	LoginInvalidCredentials = "Identifiants invalides."
	UserDisplayError        = "Une erreur est survenue lors de l'affichage de l'utilisateur."
)
