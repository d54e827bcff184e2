package config

type (
	InternalConfig struct {
		App  App
		JWT  JWT
		Form Form
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
		ActivityQueue              string
		ContentMaxUploadSizeInMB   int64
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	// Form carries the form-engine policy knobs. LockedSlugs lists template
	// slugs whose response becomes read-only after the first submission.
	Form struct {
		LockedSlugs []string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

func (f Form) IsLockedSlug(slug string) bool {
	for _, locked := range f.LockedSlugs {
		if locked == slug {
			return true
		}
	}
	return false
}
