package response

// user facing messages, the web client renders them as-is
const (
	ServerError = "Error del servidor, intenta de nuevo más tarde"
	//----------------------
	BadRequestBody = "Cuerpo de la petición incorrecto"
	//----------------------
	UsernameAlreadyExist = "El nombre de usuario ya está en uso"
	UserNotFound         = "Usuario no encontrado o inactivo"
	UserPassNotMatch     = "Contraseña incorrecta"
	InvalidToken         = "Token inválido"
	NotAuthenticated     = "Usuario no autenticado"
	//----------------------
	ViewingAlreadyExist = "Ya has registrado este contenido"
	ViewingNotFound     = "Visualización no encontrada"
	RatingNotFound      = "No hay calificación para esta visualización"
	ReviewNotFound      = "No hay reseña para esta visualización"
	EpisodeNotFound     = "Episodio no encontrado"
	EpisodeAlreadySeen  = "Este episodio ya está marcado como visto"
	OnlySeriesEpisodes  = "Solo puedes marcar episodios de series"
	//----------------------
	InvalidContentType = "TipoId debe ser 1 (Película) o 2 (Serie)"
	InvalidScore       = "La puntuación debe estar entre 1 y 10"
	ReviewTextRequired = "El texto de la reseña es requerido"
	SearchQueryMissing = "El parámetro de búsqueda es requerido"
	//----------------------
	TmdbUnavailable = "No se pudo obtener la información del catálogo"
)
