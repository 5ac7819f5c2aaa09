package jobs

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/abigaildinucci5-hue/tp-final-sub001/services"
	"github.com/abigaildinucci5-hue/tp-final-sub001/services/logger"
)

// Edad máxima de un archivo de staging antes de que lo barra la limpieza
const tempUploadMaxAge = 1 * time.Hour

// InitCronJobs registra las tareas periódicas y arranca el cron. El
// *cron.Cron lo crea y detiene quien llama (Stop al apagar el server).
// El barrido de uploads temporales es best effort: un pase fallido se
// loguea y se reintenta en el próximo tick, nunca tira el proceso.
func InitCronJobs(c *cron.Cron, log logger.Logger) error {
	_, err := c.AddFunc("@every 15m", func() {
		dir := services.TempUploadDir()
		removed, err := services.CleanupTempUploads(dir, tempUploadMaxAge)
		if err != nil {
			log.Error("limpieza de uploads temporales falló: %v", err)
			return
		}
		if removed > 0 {
			log.Info("limpieza de uploads temporales: %d archivos borrados", removed)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Info("cron jobs inicializados")
	return nil
}
