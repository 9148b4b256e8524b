// Package domain holds the matchmaking data model and the pure queue
// algorithms: per-language pools, the involvement registry, team formation,
// and room reservation with rollback. Side effects (meeting provisioning,
// notifications) live in the service layer; everything here mutates only the
// structures it is handed.
package domain
