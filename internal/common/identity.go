package common

import (
	"sync"

	"github.com/denisbrodbeck/machineid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// installNamespace scopes installation ids so they never collide with
// ids other tools derive from the same machine id.
var installNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://stayhub.app/stayctl"))

var (
	installOnce sync.Once
	installID   uuid.UUID
)

// InstallationID identifies this machine to the API as the X-Client header.
// It is stable across runs unless the machine id is unreadable, in which
// case a random id is used for the lifetime of the process.
func InstallationID() uuid.UUID {
	installOnce.Do(func() {
		id, err := machineid.ProtectedID("stayctl")
		if err != nil {
			logrus.WithError(err).Debugln("Machine id unavailable, using an ephemeral client id")
			installID = uuid.New()
			return
		}
		installID = uuid.NewSHA1(installNamespace, []byte(id))
	})
	return installID
}
