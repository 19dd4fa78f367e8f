package handlers

// Messages shown to shoppers.
const (
	msgInvalidCredentials = "Correo o contraseña incorrectos. Prueba con demo@mascotas.com y 123456"
	msgLoginRequired      = "Debes iniciar sesión para acceder a los productos"
	msgPasswordMismatch   = "Las contraseñas no coinciden"
	msgPasswordTooShort   = "La contraseña debe tener al menos 6 caracteres"
	msgEmailTaken         = "El correo ya está registrado"
	msgMissingFields      = "El nombre y el correo son obligatorios"
	msgRegistered         = "¡Registro exitoso! Ahora puedes iniciar sesión con tus credenciales."
	msgResetDone          = "Datos restablecidos. Usa demo@mascotas.com y 123456"
	msgNotAuthenticated   = "No autenticado"
	msgAddedToCart        = "Producto agregado al carrito"
	msgInvalidBody        = "Solicitud inválida"
	msgInternal           = "Error interno, intenta de nuevo"
)

// Page titles.
const (
	titleLogin    = "Iniciar Sesión - Mascotas L&C"
	titleRegister = "Registro - Mascotas L&C"
	titleProducts = "Productos - Mascotas L&C"
	titleCart     = "Carrito - Mascotas L&C"
	titlePayment  = "Pago - Mascotas L&C"
)

// LoginRequiredMessage is the error the session gate attaches when /products
// is requested without a session.
const LoginRequiredMessage = msgLoginRequired
