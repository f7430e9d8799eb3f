// Package domain contains the entities shared across the phishing assessment
// pipeline: domain registration metadata returned by the lookup collaborator
// and the risk assessment record handed to transports. These types carry no
// infrastructure concerns so every layer can depend on them.
package domain
