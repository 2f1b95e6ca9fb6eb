package app

// Exported for white-box tests of output placement.
var OutputPathExported = outputPath
