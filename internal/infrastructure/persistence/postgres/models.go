package postgres

import "time"

// UserModel é o model GORM para perfis de usuários
type UserModel struct {
	ID            string     `gorm:"type:uuid;primaryKey"`
	Username      string     `gorm:"type:varchar(50);not null;index"`
	Email         string     `gorm:"type:varchar(255);not null;index"`
	UserType      string     `gorm:"column:usertype;type:varchar(20);not null;index"`
	FirstName     string     `gorm:"column:firstname;type:varchar(100);not null"`
	LastName      string     `gorm:"column:lastname;type:varchar(100);not null"`
	ContactNumber *string    `gorm:"type:varchar(30)"`
	Address       *string    `gorm:"type:text"`
	FCMToken      *string    `gorm:"column:fcm_token;type:text"`
	IsDeleted     bool       `gorm:"not null;default:false;index"`
	DeletedAt     *time.Time // Soft delete
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// RefreshTokenModel é o model GORM para refresh tokens
type RefreshTokenModel struct {
	Token     string    `gorm:"type:text;primaryKey"`
	UserID    string    `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// ServiceModel é o model GORM para serviços
type ServiceModel struct {
	ID                  string     `gorm:"type:uuid;primaryKey"`
	Name                string     `gorm:"type:varchar(150);not null"`
	Description         string     `gorm:"type:text"`
	Price               float64    `gorm:"type:numeric(12,2);not null;default:0"`
	AllowInstallment    bool       `gorm:"not null;default:false"`
	InstallmentTimes    *int       `gorm:"type:integer"`
	InstallmentInterval *string    `gorm:"type:varchar(20)"`
	CustomIntervalDays  *int       `gorm:"type:integer"`
	IsDeleted           bool       `gorm:"not null;default:false;index"`
	DeletedAt           *time.Time // Soft delete
	CreatedAt           time.Time  `gorm:"autoCreateTime"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime"`
}

func (ServiceModel) TableName() string {
	return "services"
}

// CategoryModel é o model GORM para categorias de serviços
type CategoryModel struct {
	ID        string     `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(150);not null"`
	IsDeleted bool       `gorm:"not null;default:false;index"`
	DeletedAt *time.Time // Soft delete
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
}

func (CategoryModel) TableName() string {
	return "service_categories"
}

// CategoryLinkModel é a tabela de junção serviço→categoria.
// service_id é a chave primária: um serviço tem no máximo uma categoria.
type CategoryLinkModel struct {
	ServiceID  string    `gorm:"type:uuid;primaryKey"`
	CategoryID string    `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (CategoryLinkModel) TableName() string {
	return "service_category_links"
}

// ActivityLogModel é o model GORM para a trilha de auditoria
type ActivityLogModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement:false"`
	AdminID     string    `gorm:"type:uuid;not null;index"`
	Action      string    `gorm:"type:varchar(20);not null"`
	RecordTable string    `gorm:"column:table_name;type:varchar(64);not null"`
	RecordID    string    `gorm:"type:varchar(64);not null;index"`
	Description string    `gorm:"type:text"`
	UndoData    *string   `gorm:"type:jsonb"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
}

func (ActivityLogModel) TableName() string {
	return "activity_logs"
}

// NotificationModel é o model GORM para notificações
type NotificationModel struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	UserID    *string   `gorm:"type:uuid;index"` // nil = broadcast
	Title     string    `gorm:"type:varchar(200);not null"`
	Message   string    `gorm:"type:text;not null"`
	Type      string    `gorm:"type:varchar(30);not null"`
	IsRead    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

// DentalModelModel aponta para os arquivos 3D de um prontuário
type DentalModelModel struct {
	RecordID          string    `gorm:"type:varchar(64);primaryKey"`
	BeforeModelURL    string    `gorm:"type:text;not null"`
	BeforeModelBinURL *string   `gorm:"type:text"`
	BeforeUploadedAt  time.Time `gorm:"not null"`
}

func (DentalModelModel) TableName() string {
	return "dental_models"
}
