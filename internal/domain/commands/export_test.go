package commands

// DotEnvFileName exports dotEnvFileName for testing.
const DotEnvFileName = dotEnvFileName
