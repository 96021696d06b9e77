package initializers

import (
	"context"
	"time"

	"job-board-backend/config"
	s3client "job-board-backend/s3"

	log "github.com/sirupsen/logrus"
)

// InitS3 не останавливает сервис: без S3 недоступны только вложения резюме
func InitS3(ctx context.Context) {
	if config.Conf.S3.Endpoint == "" {
		log.Warn("S3 не настроен, отсутствует настройка S3_ENDPOINT")
		return
	}
	client, err := s3client.NewClient(config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey, config.Conf.S3.BucketName, *config.Conf.S3.UseSSL)
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err = client.MakeBucket(checkCtx); err != nil {
		log.WithError(err).Error("S3 соединение не удалось, бакет не создан")
		return
	}

	s3client.Client = client
	log.Info("S3 клиент успешно инициализирован")
}
