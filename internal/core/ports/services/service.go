package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Greenhouse      GreenhouseSvcFacade
	CropCycle       CropCycleSvcFacade
	Transaction     TransactionSvcFacade
	Farmer          FarmerSvcFacade
	Withdrawal      WithdrawalSvcFacade
	Supplier        SupplierSvcFacade
	SupplierPayment SupplierPaymentSvcFacade
	Person          PersonSvcFacade
	Advance         AdvanceSvcFacade
	Program         ProgramSvcFacade
	Settings        SettingsSvcFacade
	Ledger          LedgerSvcFacade
	Auth            AuthSvcFacade
}
