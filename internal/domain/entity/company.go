package entity

// Tipos de cuenta. Solo las empresas de tipo armazém pueden publicar anuncios.
const (
	CompanyTypeWarehouse = "Armazém"
	CompanyTypeClient    = "Cliente"
)

// Company representa una empresa registrada (tenant) que inicia sesión y es dueña de anuncios.
type Company struct {
	ID           int64
	Name         string
	Email        string // único en la tabla companies
	PasswordHash string // bcrypt, nunca en texto plano
	Type         string // ver constantes CompanyType*
}

// IsWarehouse informa si la empresa puede crear anuncios.
func (c *Company) IsWarehouse() bool {
	return c != nil && c.Type == CompanyTypeWarehouse
}

// ValidCompanyType informa si t es uno de los tipos de cuenta admitidos.
func ValidCompanyType(t string) bool {
	switch t {
	case CompanyTypeWarehouse, CompanyTypeClient:
		return true
	default:
		return false
	}
}
