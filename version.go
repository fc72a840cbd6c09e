package equinox

const Version = "0.9.0"
